package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clinics/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func TestPrecedingElement(t *testing.T) {
	t.Parallel()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(`<body>
<h3 id="a">A</h3>
<div><h3 id="b">B</h3><span id="target"></span></div>
<p id="c"></p>
</body>`))
	require.NoError(t, err)

	target := doc.Find("#target").Nodes[0]
	got := goquery.PrecedingElement(target, atom.H3)

	require.NotNil(t, got)
	assert.Equal(t, "B", got.FirstChild.Data)

	p := doc.Find("#c").Nodes[0]
	got = goquery.PrecedingElement(p, atom.H3)

	require.NotNil(t, got)
	assert.Equal(t, "B", got.FirstChild.Data)

	first := doc.Find("#a").Nodes[0]
	assert.Nil(t, goquery.PrecedingElement(first, atom.H3))
}

func TestArea(t *testing.T) {
	t.Parallel()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(`<h3>
	Area <span>One</span>
</h3><dl id="one"></dl>`))
	require.NoError(t, err)

	area, ok := goquery.Area(doc.Find("#one").Nodes[0])

	assert.True(t, ok)
	assert.Equal(t, "Area One", area)
}

func TestPrecedingElement_Ancestor(t *testing.T) {
	t.Parallel()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(`<body>
<h3 id="earlier">Earlier</h3>
<h3 id="wrapper">Kanto<dl id="inside"></dl></h3>
</body>`))
	require.NoError(t, err)

	inside := doc.Find("#inside").Nodes[0]
	require.Equal(t, "h3", inside.Parent.Data, "dl should parse as a child of the heading")

	got := goquery.PrecedingElement(inside, atom.H3)

	require.NotNil(t, got)
	assert.Same(t, inside.Parent, got)

	area, ok := goquery.Area(inside)

	assert.True(t, ok)
	assert.Equal(t, "Kanto", area)
}

func TestArea_AncestorHeadingOverSiblingContainer(t *testing.T) {
	t.Parallel()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(`<h3>Outer</h3>
<section><div><h3>Kansai</h3></div><div><dl id="one"></dl></div></section>`))
	require.NoError(t, err)

	area, ok := goquery.Area(doc.Find("#one").Nodes[0])

	assert.True(t, ok)
	assert.Equal(t, "Kansai", area)
}
