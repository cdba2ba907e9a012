package config

import "github.com/spf13/viper"

type Config struct {
	Port               string  `mapstructure:"PORT"`
	InitialCapital     float64 `mapstructure:"INITIAL_CAPITAL"`
	CommissionRate     float64 `mapstructure:"COMMISSION_RATE"`
	SlippageRate       float64 `mapstructure:"SLIPPAGE_RATE"`
	BarsPerYear        float64 `mapstructure:"BARS_PER_YEAR"`
	TrainBars          int     `mapstructure:"TRAIN_BARS"`
	TestBars           int     `mapstructure:"TEST_BARS"`
	WalkForwardWorkers int     `mapstructure:"WALKFORWARD_WORKERS"`
}

func LoadConfig() (config Config, err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("INITIAL_CAPITAL", 100000.0)
	viper.SetDefault("COMMISSION_RATE", 0.001)
	viper.SetDefault("SLIPPAGE_RATE", 0.0005)
	viper.SetDefault("BARS_PER_YEAR", 252.0)
	viper.SetDefault("TRAIN_BARS", 252)
	viper.SetDefault("TEST_BARS", 63)
	viper.SetDefault("WALKFORWARD_WORKERS", 4)

	err = viper.ReadInConfig()
	// If config file not found, we can still use env vars
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	}

	if err != nil {
		return Config{}, err
	}
	err = viper.Unmarshal(&config)
	return
}
