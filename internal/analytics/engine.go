package analytics

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/config"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/sentiment"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/transcript"
)

// Scope selects the records a query runs on: a sender name, or ScopeAll for
// every sender.
type Scope string

const ScopeAll Scope = ""

// ErrNotAnnotated is returned by sentiment-scoped queries before
// AnnotateSentiment has run. Distinguishes "scoring not configured" from
// "no data".
var ErrNotAnnotated = errors.New("sentiment annotation has not been run")

// Engine answers aggregation queries against an immutable message table.
// Every query computes a fresh result; queries have no side effects on each
// other and may run concurrently.
type Engine struct {
	records   []*transcript.Message
	stopWords map[string]bool
	topWords  int
	annotated bool
}

func NewEngine(records []*transcript.Message, cfg *config.AnalysisConfig) *Engine {
	engine := &Engine{records: records, topWords: 20}
	stopWords := defaultStopWords
	if cfg != nil {
		if cfg.TopWords > 0 {
			engine.topWords = cfg.TopWords
		}
		if len(cfg.StopWords) > 0 {
			stopWords = cfg.StopWords
		}
	}
	engine.stopWords = make(map[string]bool, len(stopWords))
	for _, word := range stopWords {
		engine.stopWords[word] = true
	}
	return engine
}

// Users lists all real senders in order of first appearance.
func (e *Engine) Users() []string {
	seen := make(map[string]bool)
	users := []string{}
	for _, message := range e.records {
		if message.IsNotification() || seen[message.Sender] {
			continue
		}
		seen[message.Sender] = true
		users = append(users, message.Sender)
	}
	return users
}

// AnnotateSentiment attaches a discrete label to every record. The scorer is
// expected to be constructed once per session and reused.
func (e *Engine) AnnotateSentiment(scorer sentiment.Scorer) error {
	if scorer == nil {
		return errors.New("no sentiment scorer provided")
	}
	for _, message := range e.records {
		message.Sentiment = scorer.Score(message.Body).Label()
	}
	e.annotated = true
	log.Infof("Annotated %v messages with sentiment labels", len(e.records))
	return nil
}

func (e *Engine) scoped(scope Scope) []*transcript.Message {
	if scope == ScopeAll {
		return e.records
	}
	matched := []*transcript.Message{}
	for _, message := range e.records {
		if message.Sender == string(scope) {
			matched = append(matched, message)
		}
	}
	return matched
}

func (e *Engine) scopedBySentiment(
	scope Scope,
	label sentiment.Label,
) ([]*transcript.Message, error) {
	if !e.annotated {
		return nil, ErrNotAnnotated
	}
	matched := []*transcript.Message{}
	for _, message := range e.scoped(scope) {
		if message.Sentiment == label {
			matched = append(matched, message)
		}
	}
	return matched, nil
}
