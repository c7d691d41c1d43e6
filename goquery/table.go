package goquery

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// ExtractTable converts an HTML table into header-named records.
//
// The header row is the first thead tr, else the first tr. Each header
// cell's text becomes a field name, defaulting to col_{i+1} when empty.
// Duplicate real header text is not deduplicated: a later column silently
// overwrites an earlier one of the same name.
//
// Each body cell contributes its text plus a parallel "{field}_type"
// classification, and conditionally "{field}_link"/"{field}_links",
// "{field}_img"/"{field}_imgs", "{field}_video" and
// "{field}_input_type"/"{field}_input_value" (singular key for exactly one
// match, plural array key for more than one). Rows where every cell is
// blank and no sub-element was captured are dropped.
func ExtractTable(table *goquery.Selection) []pagesift.Record {
	headerRow := table.Find("thead tr").First()
	if headerRow.Length() == 0 {
		headerRow = table.Find("tr").First()
	}

	var headers []string
	headerRow.Find("th,td").Each(func(i int, cell *goquery.Selection) {
		name := text(cell)
		if name == "" {
			name = fmt.Sprintf("col_%d", i+1)
		}
		headers = append(headers, name)
	})

	var headerNode *goquery.Selection
	if headerRow.Length() > 0 {
		headerNode = headerRow
	}

	var rows []pagesift.Record
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if headerNode != nil && tr.Nodes[0] == headerNode.Nodes[0] {
			return
		}
		cells := tr.Find("td,th")
		if cells.Length() == 0 {
			return
		}

		rec := pagesift.Record{}
		rich := RichAttributes(tr)
		hasContent := false

		cells.Each(func(i int, cell *goquery.Selection) {
			name := fmt.Sprintf("col_%d", i+1)
			if i < len(headers) {
				name = headers[i]
			}

			cellText := text(cell)
			rec[name] = cellText
			rec[name+"_type"] = string(pagesift.Classify(cellText))
			if cellText != "" {
				hasContent = true
			}

			links := cell.Find("a[href]")
			if links.Length() == 1 {
				rec[name+"_link"], _ = links.Attr("href")
				hasContent = true
			} else if links.Length() > 1 {
				var ls []pagesift.Link
				links.Each(func(_ int, a *goquery.Selection) {
					href, _ := a.Attr("href")
					ls = append(ls, pagesift.Link{Text: text(a), Href: href})
				})
				rec[name+"_links"] = ls
				hasContent = true
			}

			imgs := cell.Find("img[src]")
			if imgs.Length() == 1 {
				rec[name+"_img"], _ = imgs.Attr("src")
				if alt, _ := imgs.Attr("alt"); alt != "" {
					rec[name+"_img_alt"] = alt
				}
				hasContent = true
			} else if imgs.Length() > 1 {
				var is []pagesift.Image
				imgs.Each(func(_ int, img *goquery.Selection) {
					src, _ := img.Attr("src")
					alt, _ := img.Attr("alt")
					is = append(is, pagesift.Image{Src: src, Alt: alt})
				})
				rec[name+"_imgs"] = is
				hasContent = true
			}

			if video := cell.Find("video[src], video source[src]").First(); video.Length() > 0 {
				src, _ := video.Attr("src")
				rec[name+"_video"] = src
				hasContent = true
			}

			if input := cell.Find("input, select, textarea").First(); input.Length() > 0 {
				typ, ok := input.Attr("type")
				if !ok || typ == "" {
					typ = goquery.NodeName(input)
				}
				rec[name+"_input_type"] = typ
				if val, _ := input.Attr("value"); val != "" {
					rec[name+"_input_value"] = val
				}
				hasContent = true
			}
		})

		for k, v := range rich {
			rec[k] = v
			hasContent = true
		}

		if hasContent {
			rows = append(rows, rec)
		}
	})
	return rows
}
