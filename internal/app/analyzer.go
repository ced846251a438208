package app

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/analytics"
	cfg "github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/config"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/sentiment"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/transcript"
)

// Analyzer runs the whole batch: read transcript, parse, annotate, report.
type Analyzer struct {
	config *cfg.Config
	scorer sentiment.Scorer
}

func (a *Analyzer) Setup(config *cfg.Config) {
	a.config = config
	if config.Sentiment.Enabled {
		// lexicon load happens once here, the scorer is reused per message
		a.scorer = sentiment.NewVaderScorer()
	}
	log.Infof("Setup Analyzer")
}

func (a *Analyzer) Run() error {
	raw, err := os.ReadFile(a.config.ChatPath)
	if err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}
	records := transcript.ParseWithPlaceholder(string(raw), a.config.Analysis.MediaPlaceholder)
	engine := analytics.NewEngine(records, a.config.Analysis)
	if a.scorer != nil {
		if err := engine.AnnotateSentiment(a.scorer); err != nil {
			return fmt.Errorf("annotating sentiment: %w", err)
		}
	}
	report := a.buildReport(engine, analytics.Scope(a.config.User))
	fmt.Print(report)
	return nil
}
