package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
	"golang.org/x/net/html"
)

// Class fragments that mark card-like elements in modern layouts.
var cardClassMarkers = []string{"card", "item", "post", "product", "result", "entry"}

// minCardScore is the similarity floor for card detection; stricter than
// the generic candidate floor because card markers are noisy.
const minCardScore = 0.7

// CardLayout describes one detected card region: the shared parent
// container and the card elements themselves.
type CardLayout struct {
	Container *goquery.Selection
	Items     []*goquery.Selection
	Score     float64
}

// DetectCards scans the document for repeating card-like layouts, keyed by
// common class and data-testid markers. A marker needs at least 3 visible
// matches with element children to form a layout, and the matched elements
// must score above 0.7 structural similarity.
func DetectCards(doc *goquery.Document) []CardLayout {
	seen := make(map[*html.Node]bool)
	var layouts []CardLayout

	for _, marker := range cardClassMarkers {
		addCardLayout(doc, seen, &layouts, func(n *html.Node) bool {
			return classContains(n, marker)
		})
	}
	for _, marker := range []string{"card", "item"} {
		addCardLayout(doc, seen, &layouts, func(n *html.Node) bool {
			return attrContains(n, "data-testid", marker)
		})
	}

	kept := layouts[:0]
	for _, l := range layouts {
		if l.Score > minCardScore {
			kept = append(kept, l)
		}
	}
	return kept
}

func addCardLayout(doc *goquery.Document, seen map[*html.Node]bool, layouts *[]CardLayout, match func(*html.Node) bool) {
	// Only topmost matches count: a title inside a matched card often
	// repeats the card's own marker fragment.
	var items []*goquery.Selection
	for _, s := range findAll(doc.Selection, match) {
		if !isVisible(s) || s.Children().Length() == 0 {
			continue
		}
		if hasMatchingAncestor(s.Nodes[0], match) {
			continue
		}
		items = append(items, s)
	}
	if len(items) < minRepeatingChildren {
		return
	}

	container := items[0].Parent()
	if container.Length() == 0 || seen[container.Nodes[0]] {
		return
	}
	seen[container.Nodes[0]] = true

	nodes := make([]*html.Node, len(items))
	for i, s := range items {
		nodes[i] = s.Nodes[0]
	}
	*layouts = append(*layouts, CardLayout{
		Container: container,
		Items:     items,
		Score:     SimilarityScore(nodes),
	})
}

func hasMatchingAncestor(n *html.Node, match func(*html.Node) bool) bool {
	for p := n.Parent; p != nil && p.Type == html.ElementNode; p = p.Parent {
		if match(p) {
			return true
		}
	}
	return false
}

// ExtractCards turns one layout's card elements into records: title,
// description, image, url, price, rating plus rich attributes. A card that
// yields essentially nothing falls back to its raw text and markup instead
// of being discarded; cards are assumed meaningful even when unstructured.
func ExtractCards(layout CardLayout) []pagesift.Record {
	var rows []pagesift.Record
	for i, card := range layout.Items {
		rec := pagesift.Record{
			pagesift.KeyIndex: i,
			pagesift.KeyType:  "card",
		}

		if title := findFirst(card, func(n *html.Node) bool {
			return isHeading(n) || classContains(n, "title", "name")
		}); title.Length() > 0 {
			rec["title"] = text(title)
		}

		if desc := findFirst(card, func(n *html.Node) bool {
			return n.Data == "p" || classContains(n, "description", "summary")
		}); desc.Length() > 0 {
			rec["description"] = text(desc)
		}

		if img := card.Find("img[src]").First(); img.Length() > 0 {
			rec["image"], _ = img.Attr("src")
			if alt, _ := img.Attr("alt"); alt != "" {
				rec["image_alt"] = alt
			}
		}

		if link := card.Find("a[href]").First(); link.Length() > 0 {
			rec["url"], _ = link.Attr("href")
		}

		if price := findFirst(card, isPriceMarker); price.Length() > 0 {
			rec["price"] = text(price)
		}

		if rating := findFirst(card, isRatingMarker); rating.Length() > 0 {
			if label, ok := rating.Attr("aria-label"); ok && label != "" {
				rec["rating"] = label
			} else {
				rec["rating"] = text(rating)
			}
		}

		for k, v := range RichAttributes(card) {
			rec[k] = v
		}

		// At most one real field found: capture the card raw.
		if len(rec) <= 3 {
			rec["text"] = text(card)
			if markup, err := goquery.OuterHtml(card); err == nil {
				rec["html"] = markup
			}
		}

		if !rec.Empty() {
			rows = append(rows, rec)
		}
	}
	return rows
}
