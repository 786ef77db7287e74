package catalogstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bcrpharvest/lib/scrapers/bcrp"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	catalog := bcrp.Catalog{
		{
			Codigo:              "PN01770AM",
			NombreSerie:         "Exportaciones FOB - valores FOB, en millones",
			FechaInicio:         "Ene-1990",
			FechaFin:            "Dic-2024",
			UltimaActualizacion: "15-Ene-2025",
			Categoria:           "Comercio Exterior",
			CategoriaUrl:        "https://estadisticas.bcrp.gob.pe/estadisticas/series/mensuales/comercio-exterior",
			Periodicidad:        bcrp.Mensual,
		},
		{
			// empty fields and embedded quotes must survive the trip
			Codigo:              "",
			NombreSerie:         `Índice "bruto", desestacionalizado`,
			FechaInicio:         "",
			FechaFin:            "",
			UltimaActualizacion: "",
			Categoria:           "Producto Bruto Interno",
			CategoriaUrl:        "https://example.com/pbi",
			Periodicidad:        bcrp.Desconocida,
		},
	}

	path := filepath.Join(t.TempDir(), "metadata.csv")
	err := Save(catalog, path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(catalog, loaded))
}

func TestSaveWritesBom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.csv")
	err := Save(nil, path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), 3)
	require.Equal(t, utf8Bom, raw[:3])
}

func TestLoadEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.csv")
	require.NoError(t, Save(nil, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestLoadErrors(t *testing.T) {
	var storeErr *StoreError

	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	require.True(t, errors.As(err, &storeErr))

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0644))
	_, err = Load(path)
	require.Error(t, err)
	require.True(t, errors.As(err, &storeErr))
}
