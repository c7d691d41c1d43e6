package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Class tokens that conventionally mark grid or flexbox containers
// (Bootstrap, Tailwind, utility CSS). A serialized snapshot has no computed
// style, so detection relies on inline styles and these tokens.
var layoutClassTokens = []string{
	"grid", "flex", "flexbox",
	"d-flex", "d-grid",
	"inline-flex", "inline-grid",
	"row",
}

// DetectGrids finds visible containers rendered as CSS grid or flexbox with
// at least 3 visible children, scored by structural similarity. Only
// containers scoring above 0.6 are reported.
func DetectGrids(doc *goquery.Document) []Candidate {
	var out []Candidate
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if !isVisible(sel) || !isGridOrFlex(sel.Nodes[0]) {
			return
		}
		children := visibleChildren(sel)
		if children.Length() < minRepeatingChildren {
			return
		}
		score := SimilarityScore(children.Nodes)
		if score > minCandidateScore {
			out = append(out, Candidate{Selection: sel, Score: score})
		}
	})
	return out
}

// isGridOrFlex reports whether the element declares a grid or flex display,
// via inline style or a conventional layout class token.
func isGridOrFlex(n *html.Node) bool {
	for _, decl := range strings.Split(attrVal(n, "style"), ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok || strings.ToLower(strings.TrimSpace(prop)) != "display" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "grid", "inline-grid", "flex", "inline-flex":
			return true
		}
	}
	return hasClassToken(n, layoutClassTokens...)
}
