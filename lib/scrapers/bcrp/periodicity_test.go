package bcrp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPeriodicity(t *testing.T) {
	testCases := []struct {
		code     string
		expected Periodicity
	}{
		{code: "PN01770AM", expected: Mensual},
		{code: "PM04983AA", expected: Anual},
		{code: "PN02528AQ", expected: Trimestral},
		{code: "PD04637PD", expected: Diaria},
		{code: "pn01770am", expected: Mensual},
		{code: "  PN01770AM  ", expected: Mensual},
		{code: "PN01770AX", expected: Desconocida},
		{code: "PN01770A9", expected: Desconocida},
		{code: "", expected: Desconocida},
		{code: "   ", expected: Desconocida},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ClassifyPeriodicity(test.code), "code: %q", test.code)
	}
}
