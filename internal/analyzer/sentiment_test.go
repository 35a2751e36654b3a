package analyzer

import (
	"math/rand"
	"testing"
)

func newTestSentimentAnalyzer() *SentimentAnalyzer {
	return NewSentimentAnalyzer(NewDefaultLexicon())
}

func TestSentimentAnalyzer_Positive(t *testing.T) {
	a := newTestSentimentAnalyzer()

	result, err := a.Analyze("I love this product! It works great.", DefaultOptions().WithoutVader())
	if err != nil {
		t.Fatalf("Failed to analyze: %v", err)
	}

	sentiment := result.Sentiment
	if sentiment == nil {
		t.Fatal("Expected a sentiment result")
	}
	if sentiment.Label != "positive" {
		t.Errorf("Expected positive label, got %q", sentiment.Label)
	}
	if sentiment.Score <= 0 {
		t.Errorf("Expected positive score, got %f", sentiment.Score)
	}
	if sentiment.PositiveHits == 0 {
		t.Error("Expected at least one positive hit")
	}
	if sentiment.NegativeHits != 0 {
		t.Errorf("Expected no negative hits, got %d", sentiment.NegativeHits)
	}
}

func TestSentimentAnalyzer_Negative(t *testing.T) {
	a := newTestSentimentAnalyzer()

	result, err := a.Analyze("This is terrible! I hate it!", DefaultOptions().WithoutVader())
	if err != nil {
		t.Fatalf("Failed to analyze: %v", err)
	}

	sentiment := result.Sentiment
	if sentiment.Label != "negative" {
		t.Errorf("Expected negative label, got %q", sentiment.Label)
	}
	if sentiment.Score >= 0 {
		t.Errorf("Expected negative score, got %f", sentiment.Score)
	}
}

func TestSentimentAnalyzer_NeutralOnNoHits(t *testing.T) {
	a := newTestSentimentAnalyzer()

	result, err := a.Analyze("This is a chair.", DefaultOptions().WithoutVader())
	if err != nil {
		t.Fatalf("Failed to analyze: %v", err)
	}

	sentiment := result.Sentiment
	if sentiment.Label != "neutral" {
		t.Errorf("Expected neutral label, got %q", sentiment.Label)
	}
	if sentiment.Score != 0 {
		t.Errorf("Expected zero score, got %f", sentiment.Score)
	}
	if sentiment.PositiveHits != 0 || sentiment.NegativeHits != 0 {
		t.Errorf("Expected no hits, got pos=%d neg=%d", sentiment.PositiveHits, sentiment.NegativeHits)
	}
}

func TestSentimentAnalyzer_OrderInsensitive(t *testing.T) {
	a := newTestSentimentAnalyzer()
	opts := DefaultOptions().WithoutVader()

	features, err := ExtractFeatures("the product is great but support was terrible and slow")
	if err != nil {
		t.Fatalf("Failed to extract features: %v", err)
	}
	want := a.Score(features, opts)

	// Shuffling word order must not change the result
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]string(nil), features.Tokens...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		permuted := &FeatureSet{Tokens: shuffled, WordCount: len(shuffled)}
		got := a.Score(permuted, opts)

		if got.Label != want.Label || got.Score != want.Score ||
			got.PositiveHits != want.PositiveHits || got.NegativeHits != want.NegativeHits {
			t.Errorf("Permutation %d changed the result: got %+v, want %+v", i, got, want)
		}
	}
}

func TestSentimentAnalyzer_ConfigurableThresholds(t *testing.T) {
	a := newTestSentimentAnalyzer()

	features, err := ExtractFeatures("good good bad and some neutral words here now")
	if err != nil {
		t.Fatalf("Failed to extract features: %v", err)
	}

	// score = (2-1)/9
	strict := DefaultOptions().WithoutVader().WithThresholds(0.5, -0.5)
	if got := a.Score(features, strict); got.Label != "neutral" {
		t.Errorf("Expected neutral under strict thresholds, got %q", got.Label)
	}

	loose := DefaultOptions().WithoutVader().WithThresholds(0.01, -0.01)
	if got := a.Score(features, loose); got.Label != "positive" {
		t.Errorf("Expected positive under loose thresholds, got %q", got.Label)
	}
}

func TestSentimentAnalyzer_InjectedLexicon(t *testing.T) {
	a := NewSentimentAnalyzer(NewLexicon([]string{"up"}, []string{"down"}))

	features, err := ExtractFeatures("up up down")
	if err != nil {
		t.Fatalf("Failed to extract features: %v", err)
	}

	result := a.Score(features, DefaultOptions().WithoutVader())
	if result.PositiveHits != 2 || result.NegativeHits != 1 {
		t.Errorf("Expected pos=2 neg=1, got pos=%d neg=%d", result.PositiveHits, result.NegativeHits)
	}

	want := float64(1) / float64(3)
	if result.Score != want {
		t.Errorf("Expected score %f, got %f", want, result.Score)
	}
}

func TestSentimentAnalyzer_VaderPass(t *testing.T) {
	a := newTestSentimentAnalyzer()

	result, err := a.Analyze("I love this product! It works great.", DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to analyze: %v", err)
	}

	vader := result.Sentiment.Vader
	if vader == nil {
		t.Fatal("Expected a VADER result when the pass is enabled")
	}
	if vader.Compound <= 0 {
		t.Errorf("Expected positive compound score, got %f", vader.Compound)
	}
	if vader.Label != "positive" {
		t.Errorf("Expected positive VADER label, got %q", vader.Label)
	}
}
