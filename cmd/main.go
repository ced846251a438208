package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/app"
	cfg "github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/config"
)

var (
	config   *cfg.Config   = &cfg.Config{}
	analyzer *app.Analyzer = &app.Analyzer{}
)

func main() {
	log.Info("Starting chat analyzer...")
	config.Load()
	if config.ChatPath == "" {
		log.Fatal("No transcript provided, pass one with -chat")
	}
	analyzer.Setup(config)
	if err := analyzer.Run(); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	log.Info("Analysis complete")
}
