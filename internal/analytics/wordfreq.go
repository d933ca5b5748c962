package analytics

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultTopWords is the number of tokens the word-frequency view keeps
const DefaultTopWords = 20

// wordPattern matches runs of Unicode letters, digits, and underscore,
// the \b\w+\b token semantics of the upstream contract.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// TopWords tokenizes the given texts, drops stopwords and tokens of two or
// fewer runes, and returns the k most frequent tokens in descending count
// order. Ties keep first-encountered token order.
func TopWords(texts []string, k int) []WordCount {
	if k <= 0 {
		k = DefaultTopWords
	}

	counts := make(map[string]int)
	var order []string

	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
			if utf8.RuneCountInString(token) <= 2 {
				continue
			}
			if _, stop := spanishStopwords[token]; stop {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	// Stable sort over first-seen order gives deterministic tie-breaks.
	sorted := make([]string, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return counts[sorted[i]] > counts[sorted[j]]
	})

	if len(sorted) > k {
		sorted = sorted[:k]
	}

	top := make([]WordCount, len(sorted))
	for i, token := range sorted {
		top[i] = WordCount{Word: token, Count: counts[token]}
	}
	return top
}
