package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/sentiment"
	"github.com/Hiten15/WhatsApp-Chat-and-Sentiment-Analyzer/internal/transcript"
)

// PeriodCount is one (year, month) timeline bucket.
type PeriodCount struct {
	Year  int
	Month time.Month
	Label string // e.g. "January-2024"
	Count int
}

// DateCount is one calendar-date timeline bucket.
type DateCount struct {
	Date  time.Time
	Count int
}

// MonthlyTimeline buckets messages per distinct (year, month), chronological.
func (e *Engine) MonthlyTimeline(scope Scope) []PeriodCount {
	return monthlyTimeline(e.scoped(scope))
}

func (e *Engine) MonthlyTimelineBySentiment(
	scope Scope,
	label sentiment.Label,
) ([]PeriodCount, error) {
	messages, err := e.scopedBySentiment(scope, label)
	if err != nil {
		return nil, err
	}
	return monthlyTimeline(messages), nil
}

// DailyTimeline buckets messages per distinct calendar date, chronological.
func (e *Engine) DailyTimeline(scope Scope) []DateCount {
	return dailyTimeline(e.scoped(scope))
}

func (e *Engine) DailyTimelineBySentiment(
	scope Scope,
	label sentiment.Label,
) ([]DateCount, error) {
	messages, err := e.scopedBySentiment(scope, label)
	if err != nil {
		return nil, err
	}
	return dailyTimeline(messages), nil
}

// WeekActivity counts messages per day of week; all seven buckets are present.
func (e *Engine) WeekActivity(scope Scope) map[time.Weekday]int {
	return weekActivity(e.scoped(scope))
}

func (e *Engine) WeekActivityBySentiment(
	scope Scope,
	label sentiment.Label,
) (map[time.Weekday]int, error) {
	messages, err := e.scopedBySentiment(scope, label)
	if err != nil {
		return nil, err
	}
	return weekActivity(messages), nil
}

// MonthActivity counts messages per calendar month; all twelve buckets are
// present.
func (e *Engine) MonthActivity(scope Scope) map[time.Month]int {
	return monthActivity(e.scoped(scope))
}

func (e *Engine) MonthActivityBySentiment(
	scope Scope,
	label sentiment.Label,
) (map[time.Month]int, error) {
	messages, err := e.scopedBySentiment(scope, label)
	if err != nil {
		return nil, err
	}
	return monthActivity(messages), nil
}

// Heatmap is a weekday x hour count matrix; empty cells are zero.
func (e *Engine) Heatmap(scope Scope) [7][24]int {
	return heatmap(e.scoped(scope))
}

func (e *Engine) HeatmapBySentiment(
	scope Scope,
	label sentiment.Label,
) ([7][24]int, error) {
	messages, err := e.scopedBySentiment(scope, label)
	if err != nil {
		return [7][24]int{}, err
	}
	return heatmap(messages), nil
}

func monthlyTimeline(messages []*transcript.Message) []PeriodCount {
	counts := make(map[int]int)
	for _, message := range messages {
		counts[message.Year*12+int(message.Month)-1]++
	}
	keys := make([]int, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	timeline := make([]PeriodCount, len(keys))
	for i, key := range keys {
		year, month := key/12, time.Month(key%12+1)
		timeline[i] = PeriodCount{
			Year:  year,
			Month: month,
			Label: fmt.Sprintf("%s-%d", month, year),
			Count: counts[key],
		}
	}
	return timeline
}

func dailyTimeline(messages []*transcript.Message) []DateCount {
	counts := make(map[time.Time]int)
	for _, message := range messages {
		counts[message.Date]++
	}
	dates := make([]time.Time, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	timeline := make([]DateCount, len(dates))
	for i, date := range dates {
		timeline[i] = DateCount{Date: date, Count: counts[date]}
	}
	return timeline
}

func weekActivity(messages []*transcript.Message) map[time.Weekday]int {
	counts := make(map[time.Weekday]int, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		counts[day] = 0
	}
	for _, message := range messages {
		counts[message.Weekday]++
	}
	return counts
}

func monthActivity(messages []*transcript.Message) map[time.Month]int {
	counts := make(map[time.Month]int, 12)
	for month := time.January; month <= time.December; month++ {
		counts[month] = 0
	}
	for _, message := range messages {
		counts[message.Month]++
	}
	return counts
}

func heatmap(messages []*transcript.Message) [7][24]int {
	var matrix [7][24]int
	for _, message := range messages {
		matrix[message.Weekday][message.Hour]++
	}
	return matrix
}
