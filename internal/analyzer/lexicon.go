package analyzer

// Lexicon holds the fixed positive and negative word sets used for keyword
// sentiment scoring. Lookups are case-insensitive exact matches against
// normalized tokens. A Lexicon is immutable after construction and safe for
// concurrent use.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewLexicon builds a lexicon from explicit word lists. Words are expected
// lower-cased; tests inject small lexicons through this constructor.
func NewLexicon(positive, negative []string) *Lexicon {
	l := &Lexicon{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, w := range positive {
		l.positive[w] = struct{}{}
	}
	for _, w := range negative {
		l.negative[w] = struct{}{}
	}
	return l
}

// NewDefaultLexicon returns the built-in English sentiment lexicon.
func NewDefaultLexicon() *Lexicon {
	return NewLexicon(defaultPositiveWords, defaultNegativeWords)
}

// IsPositive reports whether the normalized token carries positive sentiment
func (l *Lexicon) IsPositive(token string) bool {
	_, ok := l.positive[token]
	return ok
}

// IsNegative reports whether the normalized token carries negative sentiment
func (l *Lexicon) IsNegative(token string) bool {
	_, ok := l.negative[token]
	return ok
}

var defaultPositiveWords = []string{
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"awesome", "brilliant", "superb", "outstanding", "perfect", "best",
	"love", "loved", "loves", "like", "liked", "likes", "enjoy", "enjoyed",
	"happy", "glad", "delighted", "pleased", "satisfied", "impressive",
	"beautiful", "nice", "positive", "remarkable", "exceptional", "favorite",
	"recommend", "recommended", "helpful", "useful", "reliable", "smooth",
	"fast", "easy", "works", "win", "winning", "success", "successful",
}

var defaultNegativeWords = []string{
	"bad", "terrible", "awful", "horrible", "worst", "hate",
	"hated", "hates", "dislike", "disliked", "poor", "disappointing",
	"disappointed", "broken", "useless", "annoying", "frustrating",
	"frustrated", "slow", "buggy", "unreliable", "ugly", "negative",
	"sad", "angry", "upset", "fail", "failed", "failure", "failing",
	"problem", "problems", "issue", "issues", "error", "errors",
	"crash", "crashed", "crashes", "wrong", "waste", "refund",
}
