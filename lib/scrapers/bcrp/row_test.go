package bcrp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractRow(t *testing.T) {
	doc := parseDoc(t, `<table class="series">
		<tr><th>Código</th><th>Nombre de Serie</th><th>Fecha Inicio</th><th>Fecha Fin</th><th>Última Actualización</th></tr>
		<tr>
			<td>PN01770AM</td>
			<td><a href="/series/PN01770AM">Exportaciones FOB</a> detalle</td>
			<td>Ene-1990</td>
			<td>Dic-2024</td>
			<td>15-Ene-2025</td>
		</tr>
	</table>`)
	table := doc.Find("table.series")
	mapping := MapColumns(table)
	require.Len(t, mapping, 5)

	record, ok := extractRow(table.Find("tr").Eq(1), mapping, "Comercio Exterior", "https://example.com/comercio")
	require.True(t, ok)
	require.Equal(t, SeriesRecord{
		Codigo:              "PN01770AM",
		NombreSerie:         "Exportaciones FOB",
		FechaInicio:         "Ene-1990",
		FechaFin:            "Dic-2024",
		UltimaActualizacion: "15-Ene-2025",
		Categoria:           "Comercio Exterior",
		CategoriaUrl:        "https://example.com/comercio",
		Periodicidad:        Mensual,
	}, record)
}

func TestExtractRowHeaderOnly(t *testing.T) {
	doc := parseDoc(t, `<table class="series">
		<tr><th>Código</th><th>Serie</th></tr>
	</table>`)
	table := doc.Find("table.series")

	_, ok := extractRow(table.Find("tr").First(), ColumnMapping{}, "", "")
	require.False(t, ok)
}

func TestExtractRowPositional(t *testing.T) {
	doc := parseDoc(t, `<table class="series">
		<tr>
			<td>1</td>
			<td>PN02528AQ</td>
			<td>PBI desestacionalizado</td>
			<td>T1-1980</td>
			<td>T4-2024</td>
			<td>20-Feb-2025</td>
		</tr>
		<tr>
			<td>2</td>
			<td>PD04637PD</td>
			<td>truncated row</td>
		</tr>
	</table>`)
	rows := doc.Find("table.series tr")

	record, ok := extractRow(rows.Eq(0), ColumnMapping{}, "Producto Bruto Interno", "https://example.com/pbi")
	require.True(t, ok)
	require.Equal(t, "PN02528AQ", record.Codigo)
	require.Equal(t, "PBI desestacionalizado", record.NombreSerie)
	require.Equal(t, "T1-1980", record.FechaInicio)
	require.Equal(t, "T4-2024", record.FechaFin)
	require.Equal(t, "20-Feb-2025", record.UltimaActualizacion)
	require.Equal(t, Trimestral, record.Periodicidad)

	// the positional schema needs at least 6 cells
	_, ok = extractRow(rows.Eq(1), ColumnMapping{}, "", "")
	require.False(t, ok)
}

func TestExtractRowMissingMappedCell(t *testing.T) {
	doc := parseDoc(t, `<table class="series">
		<tr><td>PM04983AA</td><td>Población</td></tr>
	</table>`)
	row := doc.Find("table.series tr").First()

	mapping := ColumnMapping{
		ColCodigo:        0,
		ColNombre:        1,
		ColInicio:        2,
		ColFin:           3,
		ColActualizacion: 4,
	}
	record, ok := extractRow(row, mapping, "Población", "https://example.com/poblacion")
	require.True(t, ok)
	require.Equal(t, "PM04983AA", record.Codigo)
	require.Equal(t, "Población", record.NombreSerie)
	require.Equal(t, "", record.FechaInicio)
	require.Equal(t, "", record.FechaFin)
	require.Equal(t, Anual, record.Periodicidad)
}
