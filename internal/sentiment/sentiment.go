package sentiment

// Label is the discrete sentiment classification of one message.
type Label int

const (
	Negative Label = -1
	Neutral  Label = 0
	Positive Label = 1
)

func (l Label) String() string {
	switch l {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// Scores holds the magnitude triple produced by a lexicon scorer, each in [0, 1].
type Scores struct {
	Positive float64
	Negative float64
	Neutral  float64
}

// Label collapses the triple into a discrete label. The check order is
// positive, negative, neutral; ties resolve to the earlier check.
func (s Scores) Label() Label {
	if s.Positive >= s.Negative && s.Positive >= s.Neutral {
		return Positive
	}
	if s.Negative >= s.Positive && s.Negative >= s.Neutral {
		return Negative
	}
	return Neutral
}

// Scorer scores a message body. Implementations may be expensive to construct
// (lexicon loading) and are expected to be reused across calls.
type Scorer interface {
	Score(text string) Scores
}
