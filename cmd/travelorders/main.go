package main

import (
	"github.com/voyago/travel-order-service/internal/app/config"
	server "github.com/voyago/travel-order-service/internal/app/controller/http/server"
	"github.com/voyago/travel-order-service/internal/app/logger"
	storage "github.com/voyago/travel-order-service/internal/app/storage/api"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}

	appStorage, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer appStorage.Close()

	httpServer, err := server.New(config, appStorage)
	if err != nil {
		zap.L().Fatal("error while creating http server", zap.Error(err))
	}

	httpServer.StartHTTPServer()
}
