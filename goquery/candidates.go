package goquery

import (
	"sort"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Candidate pairs a container suspected of holding a repeating list of
// similar items with its similarity score.
type Candidate struct {
	Selection *goquery.Selection
	Score     float64
}

const (
	// minCandidateScore is the similarity floor for the generic
	// repeating-siblings strategies.
	minCandidateScore = 0.6

	// maxCandidates caps how many containers one pass reports.
	maxCandidates = 4

	// minRepeatingChildren is the smallest child count that can count as
	// "repeating".
	minRepeatingChildren = 3
)

// SelectCandidates walks the whole document, scores every container with at
// least 3 visible children, and picks a small, non-overlapping, high-score
// set: at most 4 containers, each scoring at least 0.6, no two of which are
// in an ancestor/descendant relationship. Ties keep document order.
func SelectCandidates(doc *goquery.Document) []Candidate {
	var scored []Candidate
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if !isVisible(sel) {
			return
		}
		children := visibleChildren(sel)
		if children.Length() < minRepeatingChildren {
			return
		}
		score := SimilarityScore(children.Nodes)
		if score < minCandidateScore {
			return
		}
		scored = append(scored, Candidate{Selection: sel, Score: score})
	})

	// Stable sort keeps document order within equal scores, which keeps the
	// output deterministic.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	var chosen []Candidate
	for _, c := range scored {
		if len(chosen) >= maxCandidates {
			break
		}
		if overlapsAny(c.Selection.Nodes[0], chosen) {
			continue
		}
		chosen = append(chosen, c)
	}
	return chosen
}

// overlapsAny reports whether n is an ancestor or descendant of any already
// chosen container. An outer wrapper and an inner repeating list must not
// both be reported.
func overlapsAny(n *html.Node, chosen []Candidate) bool {
	for _, c := range chosen {
		other := c.Selection.Nodes[0]
		if isAncestorOf(other, n) || isAncestorOf(n, other) {
			return true
		}
	}
	return false
}

// isAncestorOf reports whether a is a strict ancestor of b.
func isAncestorOf(a, b *html.Node) bool {
	for p := b.Parent; p != nil; p = p.Parent {
		if p == a {
			return true
		}
	}
	return false
}
