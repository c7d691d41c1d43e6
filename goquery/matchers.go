package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// attrVal returns the value of the named attribute, or "".
func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// hasAttr reports whether the named attribute is present.
func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// attrContains reports whether the named attribute contains any of the given
// substrings, case-insensitively. It mirrors the CSS [attr*=value i]
// selector, which cascadia does not reliably support.
func attrContains(n *html.Node, name string, subs ...string) bool {
	val := strings.ToLower(attrVal(n, name))
	if val == "" {
		return false
	}
	for _, sub := range subs {
		if strings.Contains(val, sub) {
			return true
		}
	}
	return false
}

// classContains reports whether the element's class attribute contains any
// of the given substrings, case-insensitively.
func classContains(n *html.Node, subs ...string) bool {
	return attrContains(n, "class", subs...)
}

// hasClassToken reports whether the class attribute contains any of the
// given exact tokens.
func hasClassToken(n *html.Node, tokens ...string) bool {
	for _, cls := range strings.Fields(attrVal(n, "class")) {
		for _, tok := range tokens {
			if strings.EqualFold(cls, tok) {
				return true
			}
		}
	}
	return false
}

// isHeading reports whether the node is an h1..h6 element.
func isHeading(n *html.Node) bool {
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return n.Type == html.ElementNode
	}
	return false
}

// findFirst returns the first descendant of sel, in document order, whose
// node satisfies match. Returns an empty selection when nothing matches.
func findFirst(sel *goquery.Selection, match func(*html.Node) bool) *goquery.Selection {
	found := sel.Slice(0, 0)
	sel.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if match(s.Nodes[0]) {
			found = s
			return false
		}
		return true
	})
	return found
}

// findAll returns every descendant of sel, in document order, whose node
// satisfies match.
func findAll(sel *goquery.Selection, match func(*html.Node) bool) []*goquery.Selection {
	var out []*goquery.Selection
	sel.Find("*").Each(func(_ int, s *goquery.Selection) {
		if match(s.Nodes[0]) {
			out = append(out, s)
		}
	})
	return out
}
