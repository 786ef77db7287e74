package bcrp

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parseDoc(t testing.TB, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestMapColumns(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		expected ColumnMapping
	}{
		{
			name: "accented header",
			html: `<table class="series"><tr>
				<th>#</th>
				<th>Código</th>
				<th>Nombre de Serie</th>
				<th>Fecha Inicio</th>
				<th>Fecha Fin</th>
				<th>Última Actualización</th>
			</tr></table>`,
			expected: ColumnMapping{
				ColCodigo:        1,
				ColNombre:        2,
				ColInicio:        3,
				ColFin:           4,
				ColActualizacion: 5,
			},
		},
		{
			name: "plain spelling, td header cells",
			html: `<table class="series"><tr>
				<td>Codigo</td>
				<td>Serie</td>
				<td>Inicio</td>
				<td>Fin</td>
				<td>Ultima Actualizacion</td>
			</tr></table>`,
			expected: ColumnMapping{
				ColCodigo:        0,
				ColNombre:        1,
				ColInicio:        2,
				ColFin:           3,
				ColActualizacion: 4,
			},
		},
		{
			name: "shuffled column order",
			html: `<table class="series"><tr>
				<th>Nombre de Serie</th>
				<th>Código</th>
				<th>Fecha Fin</th>
				<th>Fecha Inicio</th>
			</tr></table>`,
			expected: ColumnMapping{
				ColNombre: 0,
				ColCodigo: 1,
				ColFin:    2,
				ColInicio: 3,
			},
		},
		{
			name: "unrecognized header yields empty mapping",
			html: `<table class="series"><tr>
				<td>x1</td><td>x2</td><td>x3</td><td>x4</td><td>x5</td><td>x6</td>
			</tr></table>`,
			expected: ColumnMapping{},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			doc := parseDoc(t, test.html)
			mapping := MapColumns(doc.Find("table.series"))
			diff := cmp.Diff(test.expected, mapping)
			require.Empty(t, diff)
		})
	}
}

func TestDefaultColumnMappingCoversAllFields(t *testing.T) {
	for _, col := range []Column{ColCodigo, ColNombre, ColInicio, ColFin, ColActualizacion} {
		_, ok := DefaultColumnMapping[col]
		require.True(t, ok, "column: %s", col)
	}
}
