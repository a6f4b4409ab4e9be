package goquery_test

import (
	"testing"

	"github.com/fwojciec/clinics"
	"github.com/fwojciec/clinics/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts single record with missing fields empty", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h3>Area A</h3>
<dl>
	<dt>Clinic X</dt>
	<dd><ul><li class="list_add">1 Main St</li></ul></dd>
</dl>
</body></html>`

		records, err := goquery.NewParser().Parse("page.html", html)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, clinics.Record{
			Area:    "Area A",
			Name:    "Clinic X",
			Address: "1 Main St",
		}, records[0])
	})

	t.Run("labels each block with its nearest preceding heading", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h3>North</h3>
<dl><dt>First</dt></dl>
<h3>South</h3>
<dl><dt>Second</dt></dl>
</body></html>`

		records, err := goquery.NewParser().Parse("page.html", html)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "North", records[0].Area)
		assert.Equal(t, "First", records[0].Name)
		assert.Equal(t, "South", records[1].Area)
		assert.Equal(t, "Second", records[1].Name)
	})

	t.Run("one heading governs all following blocks", func(t *testing.T) {
		t.Parallel()

		html := `<h3>Kanto</h3>
<dl><dt>A</dt></dl>
<dl><dt>B</dt></dl>
<dl><dt>C</dt></dl>`

		records, err := goquery.NewParser().Parse("page.html", html)

		require.NoError(t, err)
		require.Len(t, records, 3)
		for _, r := range records {
			assert.Equal(t, "Kanto", r.Area)
		}
	})

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()

		html := `<h3>X</h3>
<div><dl><dt>one</dt></dl></div>
<section><div><dl><dt>two</dt></dl></div></section>
<dl><dt>three</dt></dl>`

		records, err := goquery.NewParser().Parse("page.html", html)

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "one", records[0].Name)
		assert.Equal(t, "two", records[1].Name)
		assert.Equal(t, "three", records[2].Name)
	})

	t.Run("finds heading nested in an earlier container", func(t *testing.T) {
		t.Parallel()

		html := `<div class="area"><h3> Tohoku </h3><p>intro</p></div>
<div class="list"><dl><dt>Clinic</dt></dl></div>`

		records, err := goquery.NewParser().Parse("page.html", html)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Tohoku", records[0].Area)
	})

	t.Run("ignores headings after the block", func(t *testing.T) {
		t.Parallel()

		html := `<h3>Before</h3><dl><dt>Clinic</dt></dl><h3>After</h3>`

		records, err := goquery.NewParser().Parse("page.html", html)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Before", records[0].Area)
	})

	t.Run("keeps malformed blocks as empty records", func(t *testing.T) {
		t.Parallel()

		html := `<h3>Area</h3><dl></dl>`

		records, err := goquery.NewParser().Parse("page.html", html)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, clinics.Record{Area: "Area"}, records[0])
	})

	t.Run("returns no records when there are no blocks", func(t *testing.T) {
		t.Parallel()

		records, err := goquery.NewParser().Parse("page.html", `<h3>Area</h3><p>nothing here</p>`)

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("preserves duplicate blocks", func(t *testing.T) {
		t.Parallel()

		html := `<h3>A</h3><dl><dt>Same</dt></dl><dl><dt>Same</dt></dl>`

		records, err := goquery.NewParser().Parse("page.html", html)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, records[0], records[1])
	})
}

func TestParser_Parse_MissingHeading(t *testing.T) {
	t.Parallel()

	html := `<dl><dt>Orphan</dt></dl><h3>Later</h3><dl><dt>Adopted</dt></dl>`

	t.Run("optional policy uses empty area and continues", func(t *testing.T) {
		t.Parallel()

		var missing []int
		var sources []string
		p := goquery.NewParser(goquery.WithMissingHeadingFunc(func(source string, block int) {
			sources = append(sources, source)
			missing = append(missing, block)
		}))

		records, err := p.Parse("page.html", html)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, clinics.Record{Name: "Orphan"}, records[0])
		assert.Equal(t, "Later", records[1].Area)
		assert.Equal(t, []int{0}, missing)
		assert.Equal(t, []string{"page.html"}, sources)
	})

	t.Run("required policy fails with not found", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser(goquery.WithHeadingPolicy(clinics.HeadingRequired))

		records, err := p.Parse("page.html", html)

		require.Error(t, err)
		assert.Nil(t, records)
		assert.Equal(t, clinics.ENOTFOUND, clinics.ErrorCode(err))
		assert.Contains(t, clinics.ErrorMessage(err), "record block 1")
	})

	t.Run("required policy passes when every block has a heading", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser(goquery.WithHeadingPolicy(clinics.HeadingRequired))

		records, err := p.Parse("page.html", `<h3>A</h3><dl><dt>x</dt></dl>`)

		require.NoError(t, err)
		require.Len(t, records, 1)
	})
}
