package bcrp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCategory(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		url      string
		expected string
	}{
		{
			name: "heading above the table, unit suffix stripped",
			html: `<body>
				<h2>Comercio Exterior - (millones US$)</h2>
				<div class="barra-series"><table class="series"></table></div>
			</body>`,
			url:      "https://estadisticas.bcrp.gob.pe/estadisticas/series/mensuales/comercio-exterior",
			expected: "Comercio Exterior",
		},
		{
			name: "heading without unit suffix",
			html: `<body>
				<h3>Inflación</h3>
				<table class="series"></table>
			</body>`,
			url:      "https://estadisticas.bcrp.gob.pe/x",
			expected: "Inflación",
		},
		{
			name: "category title selector when no heading precedes",
			html: `<body>
				<div class="titulo-categoria">Tipo de Cambio</div>
				<table class="series"></table>
			</body>`,
			url:      "https://estadisticas.bcrp.gob.pe/x",
			expected: "Tipo de Cambio",
		},
		{
			name: "document title fallback",
			html: `<html><head><title>Reservas Internacionales</title></head>
				<body><table class="series"></table></body></html>`,
			url:      "https://estadisticas.bcrp.gob.pe/x",
			expected: "Reservas Internacionales",
		},
		{
			name: "breadcrumb fallback",
			html: `<body>
				<ul class="breadcrumb"><li>Inicio</li><li>Precios</li></ul>
				<table class="series"></table>
			</body>`,
			url:      "https://estadisticas.bcrp.gob.pe/x",
			expected: "Precios",
		},
		{
			name:     "url path segment as last resort",
			html:     `<body><table class="series"></table></body>`,
			url:      "https://estadisticas.bcrp.gob.pe/estadisticas/series/mensuales/tipo-de-cambio",
			expected: "Tipo De Cambio",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			doc := parseDoc(t, test.html)
			table := doc.Find("table.series")
			require.Equal(t, test.expected, ResolveCategory(table, doc, test.url))
		})
	}
}
