package domain

import "strings"

// RatingLabel is one of the five ordinal survey answers, or empty when the
// category was not rated.
type RatingLabel string

const (
	RatingExcellent RatingLabel = "Excellent"
	RatingVeryGood  RatingLabel = "Very Good"
	RatingGood      RatingLabel = "Good"
	RatingFair      RatingLabel = "Fair"
	RatingPoor      RatingLabel = "Poor"
)

// RatingLabels lists the five answers from best to worst.
var RatingLabels = []RatingLabel{RatingExcellent, RatingVeryGood, RatingGood, RatingFair, RatingPoor}

// Value maps a label onto the 1..5 scale. Empty or unrecognized labels map
// to 0 so callers can exclude them from averages.
func (l RatingLabel) Value() int {
	switch l {
	case RatingExcellent:
		return 5
	case RatingVeryGood:
		return 4
	case RatingGood:
		return 3
	case RatingFair:
		return 2
	case RatingPoor:
		return 1
	default:
		return 0
	}
}

// IsRated reports whether the category carries an answer.
func (l RatingLabel) IsRated() bool {
	return l.Value() > 0
}

func (l RatingLabel) String() string {
	return string(l)
}

// LabelForScore maps a numeric average back onto a label using threshold
// bands. This is deliberately not the inverse of Value: 2.6 yields Good even
// though Good converts to exactly 3.
func LabelForScore(score float64) RatingLabel {
	switch {
	case score >= 4.5:
		return RatingExcellent
	case score >= 3.5:
		return RatingVeryGood
	case score >= 2.5:
		return RatingGood
	case score >= 1.5:
		return RatingFair
	default:
		return RatingPoor
	}
}

// ParseRatingLabel normalises free-form input into a known label. Unknown
// input becomes the empty (unrated) label rather than an error, matching how
// absent categories arrive from storage.
func ParseRatingLabel(value string) RatingLabel {
	trimmed := strings.TrimSpace(value)
	for _, label := range RatingLabels {
		if strings.EqualFold(trimmed, string(label)) {
			return label
		}
	}
	return ""
}
