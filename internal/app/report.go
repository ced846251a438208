package app

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/analytics"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/sentiment"
)

var reportLabels = []sentiment.Label{sentiment.Positive, sentiment.Neutral, sentiment.Negative}

// buildReport renders every section of the analysis. Sections are independent
// reads of the engine, so they are computed concurrently and printed in order.
func (a *Analyzer) buildReport(engine *analytics.Engine, scope analytics.Scope) string {
	sections := []func() string{
		func() string { return renderStats(engine, scope) },
		func() string { return renderBusyUsers(engine, scope, a.config.Analysis.TopUsers) },
		func() string { return renderMonthlyTimeline(engine, scope) },
		func() string { return renderDailyTimeline(engine, scope) },
		func() string { return renderWeekActivity(engine, scope) },
		func() string { return renderMonthActivity(engine, scope) },
		func() string { return renderHeatmap(engine, scope) },
		func() string { return renderCommonWords(engine, scope) },
		func() string { return renderEmoji(engine, scope) },
		func() string { return renderSentiment(engine, scope, a.config.Analysis.TopUsers) },
	}
	rendered := make([]string, len(sections))
	var wg sync.WaitGroup
	wg.Add(len(sections))
	for i, section := range sections {
		go func(i int, section func() string) {
			defer wg.Done()
			rendered[i] = section()
		}(i, section)
	}
	wg.Wait()
	return strings.Join(rendered, "")
}

func title(label sentiment.Label) string {
	name := label.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

func renderStats(engine *analytics.Engine, scope analytics.Scope) string {
	stats := engine.Stats(scope)
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "== Top Statistics ==\n")
	fmt.Fprintf(sb, "Messages: %v\nWords: %v\nMedia shared: %v\nLinks shared: %v\n\n",
		stats.Messages, stats.Words, stats.Media, stats.Links)
	return sb.String()
}

func renderBusyUsers(engine *analytics.Engine, scope analytics.Scope, top int) string {
	if scope != analytics.ScopeAll {
		return ""
	}
	ranked := engine.MostBusyUsers()
	if len(ranked) > top && top > 0 {
		ranked = ranked[:top]
	}
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "== Most Busy Users ==\n")
	for _, user := range ranked {
		fmt.Fprintf(sb, "%v: %v (%.2f%%)\n", user.User, user.Count, user.Percent)
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderMonthlyTimeline(engine *analytics.Engine, scope analytics.Scope) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "== Monthly Timeline ==\n")
	for _, bucket := range engine.MonthlyTimeline(scope) {
		fmt.Fprintf(sb, "%v: %v\n", bucket.Label, bucket.Count)
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderDailyTimeline(engine *analytics.Engine, scope analytics.Scope) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "== Daily Timeline ==\n")
	for _, bucket := range engine.DailyTimeline(scope) {
		fmt.Fprintf(sb, "%v: %v\n", bucket.Date.Format("2006-01-02"), bucket.Count)
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderWeekActivity(engine *analytics.Engine, scope analytics.Scope) string {
	activity := engine.WeekActivity(scope)
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "== Weekly Activity ==\n")
	for day := time.Sunday; day <= time.Saturday; day++ {
		fmt.Fprintf(sb, "%v: %v\n", day, activity[day])
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderMonthActivity(engine *analytics.Engine, scope analytics.Scope) string {
	activity := engine.MonthActivity(scope)
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "== Monthly Activity ==\n")
	for month := time.January; month <= time.December; month++ {
		fmt.Fprintf(sb, "%v: %v\n", month, activity[month])
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderHeatmap(engine *analytics.Engine, scope analytics.Scope) string {
	matrix := engine.Heatmap(scope)
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "== Activity Heatmap (day x hour) ==\n")
	for day := time.Sunday; day <= time.Saturday; day++ {
		fmt.Fprintf(sb, "%-9v", day)
		for hour := 0; hour < 24; hour++ {
			fmt.Fprintf(sb, " %3d", matrix[day][hour])
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderCommonWords(engine *analytics.Engine, scope analytics.Scope) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "== Most Common Words ==\n")
	for _, word := range engine.MostCommonWords(scope) {
		fmt.Fprintf(sb, "%v: %v\n", word.Word, word.Count)
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderEmoji(engine *analytics.Engine, scope analytics.Scope) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "== Emoji Usage ==\n")
	for _, emoji := range engine.EmojiCounts(scope) {
		fmt.Fprintf(sb, "%v: %v\n", emoji.Emoji, emoji.Count)
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderSentiment(engine *analytics.Engine, scope analytics.Scope, top int) string {
	sb := &strings.Builder{}
	for _, label := range reportLabels {
		timeline, err := engine.MonthlyTimelineBySentiment(scope, label)
		if err != nil {
			// scoring not configured for this run
			return ""
		}
		fmt.Fprintf(sb, "== Monthly Timeline (%v) ==\n", label)
		for _, bucket := range timeline {
			fmt.Fprintf(sb, "%v: %v\n", bucket.Label, bucket.Count)
		}
		sb.WriteString("\n")
	}
	if scope == analytics.ScopeAll {
		for _, label := range reportLabels {
			shares, err := engine.SentimentShare(label)
			if err != nil {
				return ""
			}
			fmt.Fprintf(sb, "== Most %v Contribution ==\n", title(label))
			for _, share := range shares {
				fmt.Fprintf(sb, "%v: %.2f%%\n", share.User, share.Percent)
			}
			sb.WriteString("\n")
			ranked, err := engine.MostBusyUsersBySentiment(label, top)
			if err != nil {
				return ""
			}
			fmt.Fprintf(sb, "== Most %v Users ==\n", title(label))
			for _, user := range ranked {
				fmt.Fprintf(sb, "%v: %v\n", user.User, user.Count)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
