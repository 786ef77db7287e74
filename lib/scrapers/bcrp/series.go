package bcrp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
)

// SeriesTable is the reshaped response of the statistics query endpoint:
// one row per period, one column per requested series code.
type SeriesTable struct {
	// series display names, in request order
	Columns []string
	// period labels, verbatim
	Periods []string
	// Values[row][col]; "n.d." observations decode as NaN
	Values [][]float64
}

type seriesResponse struct {
	Config struct {
		Series []struct {
			Name string `json:"name"`
		} `json:"series"`
	} `json:"config"`
	Periods []struct {
		Name   string   `json:"name"`
		Values []string `json:"values"`
	} `json:"periods"`
}

// FetchSeries queries the public statistics endpoint for one or more
// series codes over an inclusive period range. The codes are the exact
// `codigo` tokens the harvested catalog carries.
func (c *Client) FetchSeries(ctx context.Context, codes []string, from, to string) (*SeriesTable, error) {
	ctx, span := tracer.Start(ctx, "client:FetchSeries")
	defer span.End()
	span.SetAttributes(attribute.StringSlice("codes", codes))

	if len(codes) == 0 {
		return nil, fmt.Errorf("no series codes given")
	}

	url := fmt.Sprintf(
		"%s/%s/json/%s/%s",
		c.apiBaseUrl, strings.Join(codes, "-"), from, to,
	)
	res, err := c.Http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.SetStatus(otelcodes.Error, "request failed")
		return nil, &FetchError{Url: url, Cause: err}
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		span.SetStatus(otelcodes.Error, "unexpected status")
		return nil, &FetchError{Url: url, Status: res.StatusCode()}
	}

	var decoded seriesResponse
	err = json.Unmarshal(res.Body(), &decoded)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "response is not json")
		return nil, fmt.Errorf("series query did not return json: %w", err)
	}
	if len(decoded.Config.Series) == 0 {
		return nil, fmt.Errorf("series query response has no column names")
	}

	table := &SeriesTable{
		Columns: make([]string, len(decoded.Config.Series)),
		Periods: make([]string, len(decoded.Periods)),
		Values:  make([][]float64, len(decoded.Periods)),
	}
	for i, s := range decoded.Config.Series {
		table.Columns[i] = s.Name
	}
	for i, p := range decoded.Periods {
		table.Periods[i] = p.Name
		row := make([]float64, len(table.Columns))
		for j := range row {
			row[j] = math.NaN()
			if j < len(p.Values) {
				row[j] = parseObservation(p.Values[j])
			}
		}
		table.Values[i] = row
	}
	return table, nil
}

// the API publishes missing observations as the literal "n.d."
func parseObservation(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "n.d.") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
