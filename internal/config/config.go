package config

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"

	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/transcript"
)

const defaultConfigPath = "config/config.toml"

type AnalysisConfig struct {
	TopWords         int    `toml:"top_words"`
	TopUsers         int    `toml:"top_users"`
	StopWordsFile    string `toml:"stop_words"`
	MediaPlaceholder string `toml:"media_placeholder"`

	StopWords []string
}

type SentimentConfig struct {
	Enabled bool `toml:"enabled"`
}

type Config struct {
	Analysis  *AnalysisConfig  `toml:"analysis"`
	Sentiment *SentimentConfig `toml:"sentiment"`

	ChatPath string
	User     string
}

func (c *Config) Load() {
	c.Analysis = &AnalysisConfig{
		TopWords:         20,
		TopUsers:         10,
		MediaPlaceholder: transcript.DefaultMediaPlaceholder,
	}
	c.Sentiment = &SentimentConfig{Enabled: true}

	// parse command line flags
	flagChat := flag.String("chat", "", "Path to the exported chat transcript")
	flagUser := flag.String("user", "", "Restrict the analysis to one sender")
	flag.Parse()
	c.ChatPath = *flagChat
	c.User = *flagUser

	// load .env
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}
	path := os.Getenv("CHAT_ANALYZER_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}

	// load config.toml
	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("No config file at %v, using defaults", path)
	} else if err := toml.Unmarshal(file, c); err != nil {
		log.Fatalf("Error decoding TOML: %s", err)
		return
	}

	c.loadStopWords()
	log.Infof("Loaded config: %+v", c.Analysis)
}

// loadStopWords reads the configured stop word file, one word per line.
func (c *Config) loadStopWords() {
	if c.Analysis.StopWordsFile == "" {
		return
	}
	file, err := os.ReadFile(c.Analysis.StopWordsFile)
	if err != nil {
		log.Fatalf("Error reading stop word file %v: %v", c.Analysis.StopWordsFile, err)
		return
	}
	words := strings.Fields(string(file))
	c.Analysis.StopWords = make([]string, 0, len(words))
	for _, word := range words {
		c.Analysis.StopWords = append(c.Analysis.StopWords, strings.ToLower(word))
	}
	log.Infof("Loaded %v stop words from %v", len(c.Analysis.StopWords), c.Analysis.StopWordsFile)
}
