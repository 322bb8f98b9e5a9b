package search

import (
	"regexp"
	"strings"

	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
)

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// normalize strips non-word characters, collapses whitespace, and lowercases.
func normalize(s string) string {
	s = nonWord.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(s)
}

// levenshtein computes classic edit distance with unit insert, delete, and
// substitute costs. Inputs are assumed already lowercased.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// similarity maps edit distance to [0,1]: 1 for identical words, 0 when
// either side is empty.
func similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 || lb == 0 {
		return 0
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

const fuzzyThreshold = 0.70

// scoreProduct computes the additive lexical score of a product against
// already-normalized query words, then applies the stock multipliers.
func scoreProduct(p domprod.Product, words []string) float64 {
	text := normalize(p.Name() + " " + p.Description())
	name := normalize(p.Name())
	textWords := strings.Fields(text)

	score := 0.0
	for _, w := range words {
		if strings.Contains(text, w) {
			score += 10
		}
		if strings.Contains(name, w) {
			score += 15
		}

		for _, tw := range textWords {
			if sim := similarity(w, tw); sim > fuzzyThreshold {
				score += sim * 5
			}
		}

		for _, key := range synonymKeys {
			group := synonymGroups[key]
			if w != key && !contains(group, w) {
				continue
			}
			score += 7 * float64(countOccurrences(text, key))
			for _, member := range group {
				score += 7 * float64(countOccurrences(text, member))
			}
		}

		for _, cat := range categoryNames {
			keywords := categoryKeywords[cat]
			if !contains(keywords, w) {
				continue
			}
			for _, kw := range keywords {
				score += 5 * float64(countOccurrences(text, kw))
			}
		}
	}

	if score > 0 {
		if p.Stock() > 0 {
			score *= 1.20
		}
		if p.Stock() > 0 && p.Stock() <= 2 {
			score *= 0.90
		}
	}
	return score
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func countOccurrences(text, word string) int {
	if word == "" {
		return 0
	}
	return strings.Count(text, word)
}
