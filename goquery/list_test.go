package goquery_test

import (
	"testing"

	"github.com/pagesift/pagesift"
	pqgoquery "github.com/pagesift/pagesift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItems(t *testing.T) {
	t.Parallel()

	t.Run("text with classified type and index", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<ul>
			<li>alice@example.com</li>
			<li>$12.50</li>
			<li>plain</li>
		</ul>`)

		rows := pqgoquery.ExtractItems(doc.Find("ul"))

		require.Len(t, rows, 3)
		assert.Equal(t, 0, rows[0][pagesift.KeyIndex])
		assert.Equal(t, "alice@example.com", rows[0]["text"])
		assert.Equal(t, "email", rows[0]["text_type"])
		assert.Equal(t, "currency", rows[1]["text_type"])
		assert.Equal(t, 2, rows[2][pagesift.KeyIndex])
	})

	t.Run("single link yields url and link_text", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<ul>
			<li><a href="/one">One</a></li>
			<li><a href="/two">Two</a></li>
			<li><a href="/three">Three</a></li>
		</ul>`)

		rows := pqgoquery.ExtractItems(doc.Find("ul"))

		require.Len(t, rows, 3)
		assert.Equal(t, "/one", rows[0]["url"])
		assert.Equal(t, "One", rows[0]["link_text"])
	})

	t.Run("multiple links yield urls array", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<div><section>
			<a href="/a">A</a><a href="/b">B</a>
		</section></div>`)

		rows := pqgoquery.ExtractItems(doc.Find("div"))

		require.Len(t, rows, 1)
		urls, ok := rows[0]["urls"].([]pagesift.Link)
		require.True(t, ok)
		assert.Len(t, urls, 2)
	})

	t.Run("price and rating heuristics", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<div>
			<article>
				<span class="product-price">$19.99</span>
				<span class="star-rating" aria-label="4.5 stars">★★★★½</span>
			</article>
		</div>`)

		rows := pqgoquery.ExtractItems(doc.Find("div"))

		require.Len(t, rows, 1)
		assert.Equal(t, "$19.99", rows[0]["price"])
		assert.Equal(t, "currency", rows[0]["price_type"])
		assert.Equal(t, "4.5 stars", rows[0]["rating"])
		assert.Equal(t, "rating", rows[0]["rating_type"])
	})

	t.Run("contact and social links", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<div>
			<article>
				<a href="mailto:bob@example.com">email</a>
				<a href="tel:+15551234">call</a>
				<a href="https://twitter.com/bob">tw</a>
				<a href="https://linkedin.com/in/bob">li</a>
			</article>
		</div>`)

		rows := pqgoquery.ExtractItems(doc.Find("div"))

		require.Len(t, rows, 1)
		assert.Equal(t, "bob@example.com", rows[0]["email"])
		assert.Equal(t, "+15551234", rows[0]["phone"])
		social, ok := rows[0]["social_links"].([]pagesift.SocialLink)
		require.True(t, ok)
		assert.Equal(t, []pagesift.SocialLink{
			{Platform: "twitter", URL: "https://twitter.com/bob"},
			{Platform: "linkedin", URL: "https://linkedin.com/in/bob"},
		}, social)
	})

	t.Run("date from datetime attribute", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<div>
			<article><time datetime="2024-06-01">June 1st</time></article>
		</div>`)

		rows := pqgoquery.ExtractItems(doc.Find("div"))

		require.Len(t, rows, 1)
		assert.Equal(t, "2024-06-01", rows[0]["date"])
		assert.Equal(t, "date", rows[0]["date_type"])
	})

	t.Run("children with no fields are dropped", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<ul>
			<li>kept</li>
			<li>   </li>
		</ul>`)

		rows := pqgoquery.ExtractItems(doc.Find("ul"))

		require.Len(t, rows, 1)
		assert.Equal(t, "kept", rows[0]["text"])
	})

	t.Run("hidden children are skipped", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<ul>
			<li>visible</li>
			<li hidden>invisible</li>
		</ul>`)

		rows := pqgoquery.ExtractItems(doc.Find("ul"))

		require.Len(t, rows, 1)
		assert.Equal(t, "visible", rows[0]["text"])
	})

	t.Run("rich attributes are merged onto records", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<div>
			<article data-price="10" itemtype="https://schema.org/Product">Widget</article>
		</div>`)

		rows := pqgoquery.ExtractItems(doc.Find("div"))

		require.Len(t, rows, 1)
		assert.Equal(t, "10", rows[0]["price"])
		assert.Equal(t, "https://schema.org/Product", rows[0]["itemtype"])
	})
}
