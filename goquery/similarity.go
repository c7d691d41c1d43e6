package goquery

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// signature returns a cheap structural fingerprint for an element: its tag
// name plus its sorted, de-duplicated class list. Repeating data (table
// rows, product cards) tends to reuse the same tag+class combination.
func signature(n *html.Node) string {
	classes := strings.Fields(attrVal(n, "class"))
	if len(classes) > 1 {
		seen := make(map[string]bool, len(classes))
		uniq := classes[:0]
		for _, c := range classes {
			if !seen[c] {
				seen[c] = true
				uniq = append(uniq, c)
			}
		}
		classes = uniq
		sort.Strings(classes)
	}
	return n.Data + "|" + strings.Join(classes, ".")
}

// SimilarityScore scores how homogeneous a set of sibling elements is, as
// the fraction of elements sharing the dominant structural signature.
// Returns 0 for fewer than 3 elements; otherwise a value in (0, 1].
func SimilarityScore(nodes []*html.Node) float64 {
	if len(nodes) < 3 {
		return 0
	}
	freq := make(map[string]int, len(nodes))
	max := 0
	for _, n := range nodes {
		s := signature(n)
		freq[s]++
		if freq[s] > max {
			max = freq[s]
		}
	}
	return float64(max) / float64(len(nodes))
}
