package main

import (
	"context"
	"log"

	"github.com/learn2codblog/AITradingLab-sub000/internal/app"
)

func main() {
	// Create application instance
	application, err := app.NewApp()
	if err != nil {
		log.Fatalf("failed to create application: %v", err)
	}

	// Run application
	ctx := context.Background()
	if err := application.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
