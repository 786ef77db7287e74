// Package catalogstore persists a harvested catalog as a delimited file.
// The file is plain UTF-8 CSV with a byte-order marker so spreadsheet
// tools open the Spanish field values correctly.
package catalogstore

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"bcrpharvest/lib/scrapers/bcrp"
)

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// Header is the fixed column order of the catalog file.
var Header = []string{
	"codigo",
	"nombre_serie",
	"fecha_inicio",
	"fecha_fin",
	"ultima_actualizacion",
	"categoria",
	"categoria_url",
	"periodicidad",
}

// StoreError is an unwritable or unreadable catalog path. Fatal.
type StoreError struct {
	Path  string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("catalog store %s: %v", e.Path, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// Save writes the catalog to `path`, header row included. All fields are
// stored as text; Save and Load round-trip losslessly.
func Save(catalog bcrp.Catalog, path string) error {
	var buf bytes.Buffer
	buf.Write(utf8Bom)

	writer := csv.NewWriter(&buf)
	if err := writer.Write(Header); err != nil {
		return &StoreError{Path: path, Cause: err}
	}
	for _, record := range catalog {
		row := []string{
			record.Codigo,
			record.NombreSerie,
			record.FechaInicio,
			record.FechaFin,
			record.UltimaActualizacion,
			record.Categoria,
			record.CategoriaUrl,
			string(record.Periodicidad),
		}
		if err := writer.Write(row); err != nil {
			return &StoreError{Path: path, Cause: err}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return &StoreError{Path: path, Cause: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &StoreError{Path: path, Cause: err}
	}
	return nil
}

// Load reads a catalog previously written by Save.
func Load(path string) (bcrp.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &StoreError{Path: path, Cause: err}
	}
	raw = bytes.TrimPrefix(raw, utf8Bom)

	reader := csv.NewReader(bytes.NewReader(raw))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &StoreError{Path: path, Cause: err}
	}
	if len(rows) == 0 {
		return nil, &StoreError{Path: path, Cause: fmt.Errorf("file is empty")}
	}
	if len(rows[0]) != len(Header) {
		return nil, &StoreError{Path: path, Cause: fmt.Errorf(
			"expected %d columns, got %d", len(Header), len(rows[0]),
		)}
	}

	catalog := make(bcrp.Catalog, 0, len(rows)-1)
	for _, row := range rows[1:] {
		catalog = append(catalog, bcrp.SeriesRecord{
			Codigo:              row[0],
			NombreSerie:         row[1],
			FechaInicio:         row[2],
			FechaFin:            row[3],
			UltimaActualizacion: row[4],
			Categoria:           row[5],
			CategoriaUrl:        row[6],
			Periodicidad:        bcrp.Periodicity(row[7]),
		})
	}
	return catalog, nil
}
