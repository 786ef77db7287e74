package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Código", expected: "codigo"},
		{input: "Última   Actualización", expected: "ultima actualizacion"},
		{input: "  Fecha Inicio\n", expected: "fecha inicio"},
		{input: "AÑO", expected: "ano"},
		{input: "", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeHeader(test.input), "input: %q", test.input)
	}
}

func TestMatchKeyword(t *testing.T) {
	require.True(t, MatchKeyword("Código", []string{"codigo"}))
	require.True(t, MatchKeyword("Nombre de Serie", []string{"serie", "nombre"}))
	require.False(t, MatchKeyword("Fecha Fin", []string{"fecha inicio", "inicio"}))
	require.False(t, MatchKeyword("", []string{"codigo"}))
}
