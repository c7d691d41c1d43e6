package goquery

import "github.com/PuerkitoBio/goquery"

// headingNear finds a name for a detected region: the immediately preceding
// heading sibling, searched up to 4 ancestor levels, else the region's own
// <caption>, else "".
func headingNear(sel *goquery.Selection) string {
	node := sel
	for tries := 0; node.Length() > 0 && tries < 4; tries++ {
		if prev := node.Prev(); prev.Is("h1,h2,h3,h4,h5,h6") {
			return text(prev)
		}
		node = node.Parent()
	}
	if cap := sel.Find("caption").First(); cap.Length() > 0 {
		return text(cap)
	}
	return ""
}
