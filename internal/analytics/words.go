package analytics

import (
	"sort"

	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/sentiment"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/textprocessor"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/transcript"
)

// Fallback stop word set used when no stop word file is configured.
var defaultStopWords = []string{
	"a", "about", "after", "all", "also", "am", "an", "and", "any", "are",
	"as", "at", "be", "because", "been", "but", "by", "can", "could", "did",
	"do", "does", "for", "from", "get", "got", "had", "has", "have", "he",
	"her", "him", "his", "how", "i", "if", "in", "is", "it", "its", "just",
	"like", "me", "my", "no", "not", "of", "ok", "okay", "on", "one", "or",
	"our", "out", "she", "so", "some", "that", "the", "their", "them", "then",
	"there", "they", "this", "to", "up", "us", "was", "we", "were", "what",
	"when", "which", "who", "will", "with", "would", "yeah", "yes", "you",
	"your",
}

type WordCount struct {
	Word  string
	Count int
}

// MostCommonWords returns the top-N word frequencies in scope after stop word
// removal, descending, ties broken by first occurrence.
func (e *Engine) MostCommonWords(scope Scope) []WordCount {
	return e.commonWords(e.scoped(scope))
}

func (e *Engine) MostCommonWordsBySentiment(
	scope Scope,
	label sentiment.Label,
) ([]WordCount, error) {
	messages, err := e.scopedBySentiment(scope, label)
	if err != nil {
		return nil, err
	}
	return e.commonWords(messages), nil
}

// WordCloud returns the full vocabulary weight map. Each word is counted at
// most once per message so a single verbose message cannot dominate.
func (e *Engine) WordCloud(scope Scope) map[string]int {
	return e.wordCloud(e.scoped(scope))
}

func (e *Engine) WordCloudBySentiment(
	scope Scope,
	label sentiment.Label,
) (map[string]int, error) {
	messages, err := e.scopedBySentiment(scope, label)
	if err != nil {
		return nil, err
	}
	return e.wordCloud(messages), nil
}

func (e *Engine) commonWords(messages []*transcript.Message) []WordCount {
	counts := make(map[string]int)
	order := []string{}
	e.eachWord(messages, func(word string) {
		if _, ok := counts[word]; !ok {
			order = append(order, word)
		}
		counts[word]++
	})
	ranked := make([]WordCount, len(order))
	for i, word := range order {
		ranked[i] = WordCount{Word: word, Count: counts[word]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > e.topWords {
		ranked = ranked[:e.topWords]
	}
	return ranked
}

func (e *Engine) wordCloud(messages []*transcript.Message) map[string]int {
	weights := make(map[string]int)
	for _, message := range messages {
		if message.IsNotification() || message.IsMedia {
			continue
		}
		seen := make(map[string]bool)
		for _, token := range textprocessor.Tokenize(message.Body) {
			word := e.countableWord(token)
			if word == "" || seen[word] {
				continue
			}
			seen[word] = true
			weights[word]++
		}
	}
	return weights
}

// eachWord feeds every countable word of the given messages to fn, excluding
// system events and media placeholders.
func (e *Engine) eachWord(messages []*transcript.Message, fn func(word string)) {
	for _, message := range messages {
		if message.IsNotification() || message.IsMedia {
			continue
		}
		for _, token := range textprocessor.Tokenize(message.Body) {
			if word := e.countableWord(token); word != "" {
				fn(word)
			}
		}
	}
}

// countableWord normalizes a token to its counting key, returning "" for
// URLs, stop words and punctuation-only tokens.
func (e *Engine) countableWord(token string) string {
	if textprocessor.IsURL(token) {
		return ""
	}
	word := textprocessor.NormalizeToken(token)
	if word == "" || e.stopWords[word] {
		return ""
	}
	return word
}
