package bcrp

import (
	"bcrpharvest/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// Column names one semantic field of a series table.
type Column string

const (
	ColCodigo        Column = "codigo"
	ColNombre        Column = "nombre_serie"
	ColInicio        Column = "fecha_inicio"
	ColFin           Column = "fecha_fin"
	ColActualizacion Column = "ultima_actualizacion"
)

// ColumnMapping maps a semantic field to its cell index within a row.
// Fields whose header keyword did not match are absent; an empty mapping
// means no header was recognized at all and the fixed positional schema
// applies.
type ColumnMapping map[Column]int

// DefaultColumnMapping is the fixed positional schema of BCRP series
// tables: cell 0 is a row counter, the five metadata fields follow.
var DefaultColumnMapping = ColumnMapping{
	ColCodigo:        1,
	ColNombre:        2,
	ColInicio:        3,
	ColFin:           4,
	ColActualizacion: 5,
}

// columnKeywords are matched against normalized header text (lowercase,
// accents folded), so the accented and plain spellings collapse together.
var columnKeywords = []struct {
	col      Column
	keywords []string
}{
	{ColCodigo, []string{"codigo"}},
	{ColNombre, []string{"serie", "nombre"}},
	{ColInicio, []string{"fecha inicio", "inicio"}},
	{ColFin, []string{"fecha fin", "fin"}},
	{ColActualizacion, []string{"ultima actualizacion"}},
}

// MapColumns inspects the first row of a table, treating it as a header,
// and maps each recognized field to its column index. An empty result
// signals the caller to fall back to DefaultColumnMapping and require
// at least 6 cells per row.
func MapColumns(table *goquery.Selection) ColumnMapping {
	mapping := ColumnMapping{}

	header := table.Find("tr").First()
	header.Find("th, td").Each(func(i int, cell *goquery.Selection) {
		text := textutil.NormalizeHeader(cell.Text())
		if text == "" {
			return
		}
		for _, ck := range columnKeywords {
			if _, claimed := mapping[ck.col]; claimed {
				continue
			}
			if textutil.MatchKeyword(text, ck.keywords) {
				mapping[ck.col] = i
				break
			}
		}
	})

	return mapping
}
