package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// Allow-list of data-* attributes copied onto records, renamed without the
// data- prefix.
var richDataAttrs = []string{
	"data-price",
	"data-rating",
	"data-id",
	"data-category",
	"data-brand",
}

// RichAttributes pulls structured hints off an element: allow-listed data-*
// attributes, the microdata itemtype, and an embedded JSON-LD payload under
// "structuredData". Malformed JSON-LD is silently ignored; it must never
// abort the surrounding extraction.
func RichAttributes(sel *goquery.Selection) pagesift.Record {
	data := pagesift.Record{}
	for _, attr := range richDataAttrs {
		if v, ok := sel.Attr(attr); ok {
			data[strings.TrimPrefix(attr, "data-")] = v
		}
	}
	if v, ok := sel.Attr("itemtype"); ok {
		data["itemtype"] = v
	}
	if script := sel.Find(`script[type="application/ld+json"]`).First(); script.Length() > 0 {
		var payload any
		if err := json.Unmarshal([]byte(script.Text()), &payload); err == nil {
			data["structuredData"] = payload
		}
	}
	return data
}
