package bcrp

import "strings"

// Periodicity is the sampling frequency of a series, inferred from the
// final letter of its code. Values are the labels the BCRP publishes.
type Periodicity string

const (
	Anual       Periodicity = "Anual"
	Trimestral  Periodicity = "Trimestral"
	Mensual     Periodicity = "Mensual"
	Diaria      Periodicity = "Diaria"
	Desconocida Periodicity = "Desconocida"
)

// ClassifyPeriodicity maps a series code suffix to its periodicity.
// Pure and total: unknown or empty codes classify as Desconocida.
func ClassifyPeriodicity(code string) Periodicity {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Desconocida
	}
	switch code[len(code)-1] {
	case 'A':
		return Anual
	case 'Q':
		return Trimestral
	case 'M':
		return Mensual
	case 'D':
		return Diaria
	default:
		return Desconocida
	}
}
