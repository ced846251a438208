package sentiment

import (
	"github.com/jonreiter/govader"
)

type polarityScorer interface {
	PolarityScores(text string) govader.Sentiment
}

// VaderScorer scores messages with the VADER lexicon. The lexicon is loaded
// once at construction; a single instance serves all messages of a session.
type VaderScorer struct {
	analyzer polarityScorer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (vs *VaderScorer) Score(text string) Scores {
	polarity := vs.analyzer.PolarityScores(text)
	return Scores{
		Positive: polarity.Positive,
		Negative: polarity.Negative,
		Neutral:  polarity.Neutral,
	}
}
