package analytics

import (
	"math"
	"sort"

	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/sentiment"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/textprocessor"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/transcript"
)

type Stats struct {
	Messages int
	Words    int
	Media    int
	Links    int
}

// UserCount ranks one sender. Percent is the share of all real-sender
// messages, rounded to two decimals.
type UserCount struct {
	User    string
	Count   int
	Percent float64
}

// UserShare is one sender's percentage for a sentiment label, relative to
// that sender's own message total.
type UserShare struct {
	User    string
	Percent float64
}

// Stats counts messages, words, media placeholders and links in scope.
// Words are whitespace tokens excluding URLs.
func (e *Engine) Stats(scope Scope) Stats {
	var stats Stats
	for _, message := range e.scoped(scope) {
		stats.Messages++
		for _, token := range textprocessor.Tokenize(message.Body) {
			if !textprocessor.IsURL(token) {
				stats.Words++
			}
		}
		if message.IsMedia {
			stats.Media++
		}
		stats.Links += len(message.URLs)
	}
	return stats
}

// MostBusyUsers ranks all real senders by message count, descending, ties
// broken by first appearance in the transcript.
func (e *Engine) MostBusyUsers() []UserCount {
	return e.rankUsers(e.records)
}

// MostBusyUsersBySentiment ranks senders by how many of their messages carry
// the given label, truncated to the top n (n <= 0 returns all).
func (e *Engine) MostBusyUsersBySentiment(label sentiment.Label, n int) ([]UserCount, error) {
	matched, err := e.scopedBySentiment(ScopeAll, label)
	if err != nil {
		return nil, err
	}
	ranked := e.rankUsers(matched)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

func (e *Engine) rankUsers(messages []*transcript.Message) []UserCount {
	counts := make(map[string]int)
	order := []string{}
	total := 0
	for _, message := range messages {
		if message.IsNotification() {
			continue
		}
		if _, ok := counts[message.Sender]; !ok {
			order = append(order, message.Sender)
		}
		counts[message.Sender]++
		total++
	}
	ranked := make([]UserCount, len(order))
	for i, user := range order {
		ranked[i] = UserCount{
			User:    user,
			Count:   counts[user],
			Percent: percentage(counts[user], total),
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// SentimentShare reports, per sender, the share of that sender's own messages
// carrying the given label, descending. Senders without such messages are
// omitted.
func (e *Engine) SentimentShare(label sentiment.Label) ([]UserShare, error) {
	if !e.annotated {
		return nil, ErrNotAnnotated
	}
	totals := make(map[string]int)
	labelled := make(map[string]int)
	order := []string{}
	for _, message := range e.records {
		if message.IsNotification() {
			continue
		}
		if _, ok := totals[message.Sender]; !ok {
			order = append(order, message.Sender)
		}
		totals[message.Sender]++
		if message.Sentiment == label {
			labelled[message.Sender]++
		}
	}
	shares := []UserShare{}
	for _, user := range order {
		if labelled[user] == 0 {
			continue
		}
		shares = append(shares, UserShare{
			User:    user,
			Percent: percentage(labelled[user], totals[user]),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percent > shares[j].Percent
	})
	return shares, nil
}

func percentage(part int, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*100*100) / 100
}
