package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
	"golang.org/x/net/html"
)

// Social platforms recognized by host substring, checked in order.
var socialPlatforms = []string{"facebook", "twitter", "linkedin", "instagram"}

// ExtractItems converts the visible children of a generic list or grid
// container into records. Each record carries the child's normalized text
// with its classified type, plus optional url(s), image(s), price, rating,
// contact, social-link and date fields pulled by class-name and attribute
// heuristics. Children yielding no fields at all are dropped.
func ExtractItems(container *goquery.Selection) []pagesift.Record {
	var rows []pagesift.Record
	visibleChildren(container).Each(func(i int, it *goquery.Selection) {
		rec := pagesift.Record{pagesift.KeyIndex: i}

		if mainText := text(it); mainText != "" {
			rec["text"] = mainText
			rec["text_type"] = string(pagesift.Classify(mainText))
		}

		links := it.Find("a[href]")
		if links.Length() == 1 {
			rec["url"], _ = links.Attr("href")
			rec["link_text"] = text(links)
		} else if links.Length() > 1 {
			var ls []pagesift.Link
			links.Each(func(_ int, a *goquery.Selection) {
				href, _ := a.Attr("href")
				ls = append(ls, pagesift.Link{Text: text(a), Href: href})
			})
			rec["urls"] = ls
		}

		imgs := it.Find("img[src]")
		if imgs.Length() == 1 {
			rec["image"], _ = imgs.Attr("src")
			alt, _ := imgs.Attr("alt")
			rec["image_alt"] = alt
		} else if imgs.Length() > 1 {
			var is []pagesift.Image
			imgs.Each(func(_ int, img *goquery.Selection) {
				src, _ := img.Attr("src")
				alt, _ := img.Attr("alt")
				is = append(is, pagesift.Image{Src: src, Alt: alt})
			})
			rec["images"] = is
		}

		if price := findFirst(it, isPriceMarker); price.Length() > 0 {
			rec["price"] = text(price)
			rec["price_type"] = string(pagesift.FieldCurrency)
		}

		if rating := findFirst(it, isRatingMarker); rating.Length() > 0 {
			if label, ok := rating.Attr("aria-label"); ok && label != "" {
				rec["rating"] = label
			} else {
				rec["rating"] = text(rating)
			}
			rec["rating_type"] = string(pagesift.FieldRating)
		}

		for k, v := range RichAttributes(it) {
			rec[k] = v
		}

		if email := it.Find(`a[href^="mailto:"]`).First(); email.Length() > 0 {
			href, _ := email.Attr("href")
			rec["email"] = strings.TrimPrefix(href, "mailto:")
		}
		if phone := it.Find(`a[href^="tel:"]`).First(); phone.Length() > 0 {
			href, _ := phone.Attr("href")
			rec["phone"] = strings.TrimPrefix(href, "tel:")
		}

		if social := extractSocialLinks(it); len(social) > 0 {
			rec["social_links"] = social
		}

		if date := it.Find("[datetime], [data-date], time").First(); date.Length() > 0 {
			val, ok := date.Attr("datetime")
			if !ok || val == "" {
				val, ok = date.Attr("data-date")
			}
			if !ok || val == "" {
				val = text(date)
			}
			rec["date"] = val
			rec["date_type"] = string(pagesift.FieldDate)
		}

		if !rec.Empty() {
			rows = append(rows, rec)
		}
	})
	return rows
}

// isPriceMarker matches elements whose class, aria-label or data attributes
// suggest a price: price/cost/amount/fee class fragments, [data-price], or
// an aria-label mentioning price.
func isPriceMarker(n *html.Node) bool {
	return classContains(n, "price", "cost", "amount", "fee") ||
		hasAttr(n, "data-price") ||
		attrContains(n, "aria-label", "price")
}

// isRatingMarker matches elements whose class or attributes suggest a
// rating: rating/score/review class fragments, [data-rating], or an
// aria-label mentioning stars.
func isRatingMarker(n *html.Node) bool {
	return classContains(n, "rating", "score", "review") ||
		hasAttr(n, "data-rating") ||
		attrContains(n, "aria-label", "stars")
}

// extractSocialLinks collects anchors pointing at recognized social-media
// hosts, tagged with their platform.
func extractSocialLinks(sel *goquery.Selection) []pagesift.SocialLink {
	var out []pagesift.SocialLink
	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		lower := strings.ToLower(href)
		for _, platform := range socialPlatforms {
			if strings.Contains(lower, platform+".com") {
				out = append(out, pagesift.SocialLink{Platform: platform, URL: href})
				return
			}
		}
	})
	return out
}
