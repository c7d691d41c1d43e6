package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
	"golang.org/x/net/html"
)

// minSocialItems is the smallest number of matched post elements that counts
// as a feed. Below this the strategy yields nothing.
const minSocialItems = 3

// DetectSocial collects elements matching common social-post markers
// (tweet/post/story/update class fragments and data-testids), in document
// order. Only topmost matches count: a marker inside an already matched
// post belongs to that post, not to a new one. Returns nil when fewer than
// 3 visible matches exist.
func DetectSocial(doc *goquery.Document) []*goquery.Selection {
	var items []*goquery.Selection
	for _, s := range findAll(doc.Selection, isSocialPost) {
		if !isVisible(s) || hasSocialAncestor(s.Nodes[0]) {
			continue
		}
		items = append(items, s)
	}
	if len(items) < minSocialItems {
		return nil
	}
	return items
}

func hasSocialAncestor(n *html.Node) bool {
	for p := n.Parent; p != nil && p.Type == html.ElementNode; p = p.Parent {
		if isSocialPost(p) {
			return true
		}
	}
	return false
}

func isSocialPost(n *html.Node) bool {
	return classContains(n, "tweet", "post", "story", "update") ||
		attrContains(n, "data-testid", "tweet", "post")
}

// ExtractSocial turns social-post elements into records with username,
// content, timestamp and engagement fields. A record is kept only when it
// carries content or a username.
func ExtractSocial(items []*goquery.Selection) []pagesift.Record {
	var rows []pagesift.Record
	for i, el := range items {
		rec := pagesift.Record{
			pagesift.KeyIndex: i,
			pagesift.KeyType:  "social",
		}

		if username := findFirst(el, func(n *html.Node) bool {
			return classContains(n, "username", "handle") ||
				attrContains(n, "data-testid", "username")
		}); username.Length() > 0 {
			rec["username"] = text(username)
		}

		if content := findFirst(el, func(n *html.Node) bool {
			return classContains(n, "content", "text") || n.Data == "p"
		}); content.Length() > 0 {
			rec["content"] = text(content)
		}

		// Timestamp priority: datetime attribute, then title, then text.
		if ts := findFirst(el, func(n *html.Node) bool {
			return n.Data == "time" || classContains(n, "time", "date")
		}); ts.Length() > 0 {
			val, ok := ts.Attr("datetime")
			if !ok || val == "" {
				val, ok = ts.Attr("title")
			}
			if !ok || val == "" {
				val = text(ts)
			}
			rec["timestamp"] = val
		}

		if likes := findFirst(el, func(n *html.Node) bool {
			return attrContains(n, "aria-label", "like") || classContains(n, "like")
		}); likes.Length() > 0 {
			rec["likes"] = text(likes)
		}

		if shares := findFirst(el, func(n *html.Node) bool {
			return attrContains(n, "aria-label", "share", "retweet") || classContains(n, "share")
		}); shares.Length() > 0 {
			rec["shares"] = text(shares)
		}

		if content, _ := rec["content"].(string); content != "" {
			rows = append(rows, rec)
		} else if username, _ := rec["username"].(string); username != "" {
			rows = append(rows, rec)
		}
	}
	return rows
}
