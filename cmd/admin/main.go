package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/book-exchange-admin/admin/app"
	"github.com/Astemirdum/book-exchange-admin/admin/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// @title Book Exchange Admin API
// @version 1.0
// @description Admin listing and CRUD forwarding for the book-exchange catalog.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env: ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app.Run ", err)
	}
}
