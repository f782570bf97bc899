package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bootinge/omim/pkg/di"
)

func main() {
	server, cleanup, err := di.InitializeSearcherService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	server.Log.Info("server ready")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	server.Log.Info("shutting down")
}
