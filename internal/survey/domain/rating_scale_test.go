package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingLabelValue(t *testing.T) {
	cases := []struct {
		label RatingLabel
		want  int
	}{
		{RatingExcellent, 5},
		{RatingVeryGood, 4},
		{RatingGood, 3},
		{RatingFair, 2},
		{RatingPoor, 1},
		{RatingLabel(""), 0},
		{RatingLabel("Outstanding"), 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.label.Value(), "label %q", tc.label)
	}
}

func TestLabelForScoreUsesThresholdBands(t *testing.T) {
	cases := []struct {
		score float64
		want  RatingLabel
	}{
		{5, RatingExcellent},
		{4.5, RatingExcellent},
		{4.49, RatingVeryGood},
		{3.5, RatingVeryGood},
		{3.0, RatingGood},
		{2.6, RatingGood},
		{2.5, RatingGood},
		{2.49, RatingFair},
		{1.5, RatingFair},
		{1.49, RatingPoor},
		{0, RatingPoor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LabelForScore(tc.score), "score %v", tc.score)
	}
}

// The two mappings are independent directions, not a bijection: every label
// round-trips through its exact value, but scores inside a band do not map
// back to their originating number.
func TestScaleIsNotABijection(t *testing.T) {
	for _, label := range RatingLabels {
		assert.Equal(t, label, LabelForScore(float64(label.Value())))
	}
	assert.Equal(t, RatingGood, LabelForScore(2.6))
	assert.Equal(t, 3, RatingGood.Value())
}

func TestLabelForScoreAlwaysReturnsKnownLabel(t *testing.T) {
	for score := 0.0; score <= 5.0; score += 0.25 {
		got := LabelForScore(score)
		assert.Contains(t, RatingLabels, got, "score %v", score)
	}
}

func TestParseRatingLabel(t *testing.T) {
	assert.Equal(t, RatingVeryGood, ParseRatingLabel("very good"))
	assert.Equal(t, RatingExcellent, ParseRatingLabel("  Excellent "))
	assert.Equal(t, RatingLabel(""), ParseRatingLabel("amazing"))
	assert.Equal(t, RatingLabel(""), ParseRatingLabel(""))
}
