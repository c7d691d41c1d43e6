package goquery

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// maxFallbackLinks bounds the last-resort anchor scrape.
const maxFallbackLinks = 300

// ExtractStructuredData collects JSON-LD payloads from the document as
// records: an array payload yields one record per object element, a single
// object yields one record. Scripts with malformed JSON are skipped.
func ExtractStructuredData(doc *goquery.Document) []pagesift.Record {
	var rows []pagesift.Record
	doc.Find(`script[type="application/ld+json"]`).Each(func(scriptIdx int, script *goquery.Selection) {
		var payload any
		if err := json.Unmarshal([]byte(script.Text()), &payload); err != nil {
			return
		}
		switch v := payload.(type) {
		case []any:
			for i, item := range v {
				rows = append(rows, structuredRecord(item, i))
			}
		case map[string]any:
			rows = append(rows, structuredRecord(v, scriptIdx))
		}
	})
	return rows
}

func structuredRecord(item any, index int) pagesift.Record {
	rec := pagesift.Record{}
	if m, ok := item.(map[string]any); ok {
		for k, v := range m {
			rec[k] = v
		}
	} else {
		rec["value"] = item
	}
	rec[pagesift.KeyIndex] = index
	rec[pagesift.KeySource] = "json-ld"
	return rec
}

// ExtractLinks is the final fallback: a bounded scrape of anchors, each with
// its text, href and, when the enclosing list item or block carries more
// text than the anchor itself, that surrounding context.
func ExtractLinks(doc *goquery.Document) []pagesift.Record {
	var rows []pagesift.Record
	doc.Find("a[href]").EachWithBreak(func(i int, a *goquery.Selection) bool {
		if i >= maxFallbackLinks {
			return false
		}
		href, _ := a.Attr("href")
		title := text(a)
		if title == "" && href == "" {
			return true
		}

		rec := pagesift.Record{
			pagesift.KeyIndex: i,
			pagesift.KeyType:  "link",
			"title":           title,
			"url":             href,
		}

		if parent := a.Closest("li, div, article, section"); parent.Length() > 0 && parent.Nodes[0] != a.Nodes[0] {
			if context := text(parent); len(context) > len(title) {
				rec["context"] = context
			}
		}

		rows = append(rows, rec)
		return true
	})
	return rows
}
