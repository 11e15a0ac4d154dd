// Package wordcount counts word frequencies.
package wordcount

import "sort"

// Entry is one word with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Count returns how many times each word appears in words.
func Count(words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	return counts
}

// Ordered flattens counts into entries sorted by count descending, ties
// broken by word so output is deterministic.
func Ordered(counts map[string]int) []Entry {
	out := make([]Entry, 0, len(counts))
	for w, n := range counts {
		out = append(out, Entry{Word: w, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}
