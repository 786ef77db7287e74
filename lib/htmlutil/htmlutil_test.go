package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	require.Equal(t, "foo bar", CleanText("  foo   bar\n"))
	require.Equal(t, "", CleanText(" \t\n"))
}

func TestPrecedingHeading(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<body>
		<h1>Estadísticas</h1>
		<div><h2>Comercio Exterior</h2></div>
		<div class="barra-series"><table class="series"></table></div>
		<h2>Precios</h2>
	</body>`))
	require.NoError(t, err)

	table := doc.Find("table.series")
	require.Len(t, table.Nodes, 1)

	heading := PrecedingHeading(doc, table.Nodes[0])
	require.NotNil(t, heading)
	require.Equal(t, "Comercio Exterior", CleanText(GetText(heading)))
}

func TestPrecedingHeadingNone(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<body><table class="series"></table><h2>After</h2></body>`,
	))
	require.NoError(t, err)

	table := doc.Find("table.series")
	require.Nil(t, PrecedingHeading(doc, table.Nodes[0]))
}
