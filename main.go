package main

import (
	"os"

	"taskmanager/connection"
	"taskmanager/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	development := os.Getenv("APP_ENV") != "production"
	if !development {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Init(development)
	defer logger.Sync()

	connection.StartServer()
}
