package bcrp

import (
	"bcrpharvest/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// minimum cells a row must have when no header mapping was recognized
const minPositionalCells = 6

// extractRow turns one data row into a SeriesRecord. The second return
// is false when the row should be skipped: separator rows (no td cells)
// and short rows under the positional schema. A malformed cell never
// aborts the table; missing cells simply yield empty fields.
func extractRow(row *goquery.Selection, mapping ColumnMapping, category, sourceUrl string) (SeriesRecord, bool) {
	cells := row.Find("td")
	if cells.Length() == 0 {
		return SeriesRecord{}, false
	}
	if len(mapping) == 0 && cells.Length() < minPositionalCells {
		return SeriesRecord{}, false
	}

	cellText := func(col Column) string {
		idx, ok := mapping[col]
		if !ok {
			idx = DefaultColumnMapping[col]
		}
		if idx >= cells.Length() {
			return ""
		}
		return htmlutil.CleanText(cells.Eq(idx).Text())
	}

	// series names are usually hyperlinked to the series detail page;
	// the anchor text is the display name, surrounding text is noise
	nombre := ""
	{
		idx, ok := mapping[ColNombre]
		if !ok {
			idx = DefaultColumnMapping[ColNombre]
		}
		if idx < cells.Length() {
			cell := cells.Eq(idx)
			if anchor := cell.Find("a").First(); anchor.Length() > 0 {
				nombre = htmlutil.CleanText(anchor.Text())
			} else {
				nombre = htmlutil.CleanText(cell.Text())
			}
		}
	}

	codigo := cellText(ColCodigo)
	return SeriesRecord{
		Codigo:              codigo,
		NombreSerie:         nombre,
		FechaInicio:         cellText(ColInicio),
		FechaFin:            cellText(ColFin),
		UltimaActualizacion: cellText(ColActualizacion),
		Categoria:           category,
		CategoriaUrl:        sourceUrl,
		Periodicidad:        ClassifyPeriodicity(codigo),
	}, true
}
