package insights

import (
	"sort"
	"strings"
)

// WordCount pairs a token with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// stopWords are skipped during tokenization: common English function words
// and pronouns that carry no theme signal.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "was": {}, "were": {}, "for": {}, "that": {},
	"this": {}, "with": {}, "have": {}, "has": {}, "had": {}, "not": {},
	"but": {}, "they": {}, "them": {}, "their": {}, "there": {}, "here": {},
	"very": {}, "too": {}, "are": {}, "you": {}, "your": {}, "yours": {},
	"our": {}, "ours": {}, "out": {}, "all": {}, "can": {}, "will": {},
	"would": {}, "should": {}, "could": {}, "been": {}, "being": {},
	"from": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "about": {}, "after": {}, "before": {}, "because": {},
	"into": {}, "over": {}, "under": {}, "then": {}, "than": {},
	"some": {}, "such": {}, "only": {}, "also": {}, "just": {},
	"like": {}, "more": {}, "most": {}, "other": {}, "much": {},
	"many": {}, "each": {}, "how": {}, "who": {}, "whom": {}, "why": {},
	"his": {}, "her": {}, "hers": {}, "him": {}, "she": {}, "its": {},
	"did": {}, "does": {}, "doing": {}, "done": {}, "get": {}, "got": {},
}

const tokenPunctuation = ".,!?;:'\"()[]{}-/\\&*#@"

// WordFrequencies performs the naive word-frequency analysis behind the
// feedback themes view: lowercase, split on whitespace, strip punctuation,
// drop stop words and tokens of two characters or fewer, count what's left.
// There is no stemming and no phrase detection; this is a lightweight theme
// indicator, not real NLP. Results are ordered by count descending, equal
// counts alphabetically, truncated to limit when limit is positive.
func WordFrequencies(texts []string, limit int) []WordCount {
	counts := map[string]int{}
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		for _, token := range strings.Fields(strings.ToLower(text)) {
			token = strings.Trim(token, tokenPunctuation)
			if len(token) <= 2 {
				continue
			}
			if _, skip := stopWords[token]; skip {
				continue
			}
			counts[token]++
		}
	}

	result := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		result = append(result, WordCount{Word: word, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Word < result[j].Word
		}
		return result[i].Count > result[j].Count
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
