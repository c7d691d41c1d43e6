package goquery_test

import (
	"testing"

	"github.com/pagesift/pagesift"
	pqgoquery "github.com/pagesift/pagesift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productCardsHTML = `<body><section id="catalog">
	<div class="product-card">
		<h3>Widget</h3>
		<p>A fine widget.</p>
		<img src="/widget.png" alt="widget">
		<a href="/widget">More</a>
		<span class="price">$5.00</span>
		<span class="rating" aria-label="4 stars">★★★★</span>
	</div>
	<div class="product-card">
		<h3>Gadget</h3>
		<p>A fine gadget.</p>
		<img src="/gadget.png" alt="gadget">
		<a href="/gadget">More</a>
		<span class="price">$7.00</span>
	</div>
	<div class="product-card">
		<h3>Sprocket</h3>
		<p>A fine sprocket.</p>
		<img src="/sprocket.png" alt="sprocket">
		<a href="/sprocket">More</a>
		<span class="price">$9.00</span>
	</div>
</section></body>`

func TestDetectCards(t *testing.T) {
	t.Parallel()

	t.Run("detects a repeating card layout", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, productCardsHTML)

		layouts := pqgoquery.DetectCards(doc)

		require.Len(t, layouts, 1)
		id, _ := layouts[0].Container.Attr("id")
		assert.Equal(t, "catalog", id)
		assert.Len(t, layouts[0].Items, 3)
		assert.Greater(t, layouts[0].Score, 0.7)
	})

	t.Run("fewer than three cards is no layout", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<body><div>
			<div class="card"><h3>One</h3></div>
			<div class="card"><h3>Two</h3></div>
		</body>`)

		assert.Empty(t, pqgoquery.DetectCards(doc))
	})

	t.Run("dissimilar marker matches are rejected", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<body><div>
			<div class="card a"><h3>1</h3></div>
			<span class="card b"><em>2</em></span>
			<p class="card c"><em>3</em></p>
			<em class="card d"><b>4</b></em>
		</div></body>`)

		assert.Empty(t, pqgoquery.DetectCards(doc))
	})

	t.Run("data-testid markers are recognized", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<body><main>
			<div data-testid="result-card-1"><h4>a</h4></div>
			<div data-testid="result-card-2"><h4>b</h4></div>
			<div data-testid="result-card-3"><h4>c</h4></div>
		</main></body>`)

		layouts := pqgoquery.DetectCards(doc)

		require.Len(t, layouts, 1)
		assert.Len(t, layouts[0].Items, 3)
	})
}

func TestExtractCards(t *testing.T) {
	t.Parallel()

	t.Run("structured card fields", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, productCardsHTML)
		layouts := pqgoquery.DetectCards(doc)
		require.Len(t, layouts, 1)

		rows := pqgoquery.ExtractCards(layouts[0])

		require.Len(t, rows, 3)
		first := rows[0]
		assert.Equal(t, 0, first[pagesift.KeyIndex])
		assert.Equal(t, "card", first[pagesift.KeyType])
		assert.Equal(t, "Widget", first["title"])
		assert.Equal(t, "A fine widget.", first["description"])
		assert.Equal(t, "/widget.png", first["image"])
		assert.Equal(t, "widget", first["image_alt"])
		assert.Equal(t, "/widget", first["url"])
		assert.Equal(t, "$5.00", first["price"])
		assert.Equal(t, "4 stars", first["rating"])
	})

	t.Run("unstructured cards fall back to raw text and markup", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<body><div id="wall">
			<div class="card"><b>just words one</b></div>
			<div class="card"><b>just words two</b></div>
			<div class="card"><b>just words three</b></div>
		</div></body>`)
		layouts := pqgoquery.DetectCards(doc)
		require.Len(t, layouts, 1)

		rows := pqgoquery.ExtractCards(layouts[0])

		require.Len(t, rows, 3)
		assert.Equal(t, "just words one", rows[0]["text"])
		assert.Contains(t, rows[0]["html"], "<b>just words one</b>")
	})

	t.Run("rich attributes ride along", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<body><div>
			<div class="card" data-brand="acme" data-category="tools"><h3>Hammer</h3></div>
			<div class="card"><h3>Saw</h3></div>
			<div class="card"><h3>Drill</h3></div>
		</div></body>`)
		layouts := pqgoquery.DetectCards(doc)
		require.Len(t, layouts, 1)

		rows := pqgoquery.ExtractCards(layouts[0])

		require.Len(t, rows, 3)
		assert.Equal(t, "acme", rows[0]["brand"])
		assert.Equal(t, "tools", rows[0]["category"])
	})
}
