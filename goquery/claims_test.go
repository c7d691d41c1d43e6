package goquery_test

import (
	"testing"

	pqgoquery "github.com/pagesift/pagesift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimSet(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<body>
		<ul id="a"><li>1</li></ul>
		<ul id="b"><li>2</li></ul>
	</body>`)
	a := doc.Find("#a")
	b := doc.Find("#b")
	require.Equal(t, 1, a.Length())
	require.Equal(t, 1, b.Length())

	claims := pqgoquery.NewClaimSet()
	assert.False(t, claims.Claimed(a.Nodes[0]))

	claims.Claim(a.Nodes[0])

	assert.True(t, claims.Claimed(a.Nodes[0]))
	assert.False(t, claims.Claimed(b.Nodes[0]))
	assert.Equal(t, 1, claims.Len())
}

func TestClaimSet_ClaimedWithin(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<body>
		<table id="outer"><tbody id="inner"><tr><td>1</td></tr></tbody></table>
		<ul id="other"><li>2</li></ul>
	</body>`)
	claims := pqgoquery.NewClaimSet()
	claims.Claim(doc.Find("#outer").Nodes[0])

	inner := doc.Find("#inner").Nodes[0]
	assert.False(t, claims.Claimed(inner))
	assert.True(t, claims.ClaimedWithin(inner))
	assert.True(t, claims.ClaimedWithin(doc.Find("#outer").Nodes[0]))
	assert.False(t, claims.ClaimedWithin(doc.Find("#other").Nodes[0]))
}

func TestContainerIdentity(t *testing.T) {
	t.Parallel()

	t.Run("stable across reparses of the same markup", func(t *testing.T) {
		t.Parallel()
		const markup = `<body><div><ul id="x"><li>1</li></ul></div></body>`
		first := parseDoc(t, markup).Find("#x")
		second := parseDoc(t, markup).Find("#x")
		require.Equal(t, 1, first.Length())
		require.Equal(t, 1, second.Length())

		assert.Equal(t,
			pqgoquery.ContainerIdentity(first.Nodes[0]),
			pqgoquery.ContainerIdentity(second.Nodes[0]),
		)
	})

	t.Run("distinct nodes get distinct identities", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<body><ul id="a"><li>1</li></ul><ul id="b"><li>2</li></ul></body>`)
		assert.NotEqual(t,
			pqgoquery.ContainerIdentity(doc.Find("#a").Nodes[0]),
			pqgoquery.ContainerIdentity(doc.Find("#b").Nodes[0]),
		)
	})
}
