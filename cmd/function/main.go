package main

import (
	"context"
	"log"

	"cavebeat-backend/config"
	"cavebeat-backend/internal/app"
	"cavebeat-backend/internal/delivery/function"
	"cavebeat-backend/pkg/logger"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	// Rate limiting belongs to the gateway here, so Redis is not used.
	cfg.UpstashRedisURL = ""
	application := app.New(context.Background(), cfg, logger.Log)
	defer application.Close()

	lambda.Start(function.NewHandler(application.HireTeamUC, cfg.CORSOrigin).Handle)
}
