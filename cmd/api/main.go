package main

import (
	"os"

	_ "mecanica_rff/docs"
	"mecanica_rff/internal/adapter/http/routes"
	"mecanica_rff/internal/infrastructure/config"
	"mecanica_rff/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Mecânica RFF API
// @version         1.0
// @description     Quotes and orders (orçamentos/pedidos) with stock reservation, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Setup("info", "console", os.Stderr)
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Setup(cfg.App.LogLevel, cfg.App.LogFormat, os.Stderr)
	if cfg.App.LogFormat != "console" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := routes.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
