package common

const (
	// MaxSubmissionRequestBody limits JSON request bodies for submission endpoints.
	MaxSubmissionRequestBody = 1 << 20
	// MaxConcernTextRunes limits one free-text complaint so payloads stay sane.
	MaxConcernTextRunes = 2000
	// MaxRatedLocations caps how many units a single submission may rate.
	MaxRatedLocations = 20
	// DefaultFeedbackWordLimit is the number of theme words returned when the
	// caller does not ask for a specific count.
	DefaultFeedbackWordLimit = 20
)
