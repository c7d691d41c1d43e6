// Package goquery implements the structural-detection and record-extraction
// engine over parsed HTML snapshots. It discovers repeating regions (tables,
// card grids, flex/grid layouts, social feeds, plain lists), extracts one
// record per item with strategy-specific field heuristics, and assembles the
// results into typed datasets.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Tags that never contribute rendered output.
var nonRenderedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
	"head":     true,
	"meta":     true,
	"link":     true,
	"title":    true,
	"base":     true,
}

// text returns the whitespace-normalized rendered text of a selection,
// skipping script/style/template subtrees that goquery's Text would include.
func text(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeRenderedText(&b, n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func writeRenderedText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		b.WriteByte(' ')
	case html.ElementNode:
		if nonRenderedTags[n.Data] {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeRenderedText(b, c)
	}
}

// isVisible reports whether an element occupies layout area. A serialized
// snapshot has no box model, so the check is markup-based: non-rendering
// tags, the hidden attribute, aria-hidden, hidden inputs, and inline styles
// that collapse the element, inherited from any ancestor.
func isVisible(sel *goquery.Selection) bool {
	if len(sel.Nodes) == 0 {
		return false
	}
	return nodeVisible(sel.Nodes[0])
}

func nodeVisible(n *html.Node) bool {
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		if nonRenderedTags[cur.Data] {
			return false
		}
		if hasAttr(cur, "hidden") {
			return false
		}
		if attrVal(cur, "aria-hidden") == "true" {
			return false
		}
		if cur.Data == "input" && strings.EqualFold(attrVal(cur, "type"), "hidden") {
			return false
		}
		if styleHides(attrVal(cur, "style")) {
			return false
		}
	}
	return true
}

// styleHides parses an inline style attribute and reports whether any
// declaration collapses the element to zero layout area.
func styleHides(style string) bool {
	for _, decl := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.ToLower(strings.TrimSpace(val))
		switch prop {
		case "display":
			if val == "none" {
				return true
			}
		case "visibility":
			if val == "hidden" || val == "collapse" {
				return true
			}
		case "width", "height":
			if val == "0" || val == "0px" || val == "0%" {
				return true
			}
		}
	}
	return false
}

// visibleChildren returns the element children of sel that are visible.
func visibleChildren(sel *goquery.Selection) *goquery.Selection {
	return sel.Children().FilterFunction(func(_ int, child *goquery.Selection) bool {
		return isVisible(child)
	})
}
