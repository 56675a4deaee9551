package main

import (
	"log"

	"github.com/ivan-nizalzov/explore-with-me/internal/config"
	"github.com/ivan-nizalzov/explore-with-me/internal/stats/server"
)

func main() {
	cfg := config.MustLoadStats()

	application, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("stats init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("stats run: %v", err)
	}
}
