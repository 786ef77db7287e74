package bcrp

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SkipDiagnostic records one link, table or row that was skipped during
// a harvest, so operators can assert on what is missing instead of
// grepping console output. Table/Row are -1 when not applicable.
type SkipDiagnostic struct {
	Url    string
	Table  int
	Row    int
	Reason string
}

type Harvester struct {
	client  *Client
	workers int
}

const defaultWorkers = 4
const maxWorkers = 8

// NewHarvester wraps a client with a bounded fetch pool. `workers` <= 0
// selects the default of 4; values above 8 are clamped, the statistics
// site throttles aggressive clients.
func NewHarvester(client *Client, workers int) *Harvester {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	return &Harvester{client: client, workers: workers}
}

// ReadLinkList loads the `;`-separated link list file. The only column
// that matters is `Link`, one category page URL per row. A missing file
// or missing column is an *InputError, fatal before any fetching.
func ReadLinkList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Cause: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &InputError{Path: path, Cause: err}
	}
	if len(rows) == 0 {
		return nil, &InputError{Path: path, Cause: fmt.Errorf("file is empty")}
	}

	linkCol := -1
	for i, name := range rows[0] {
		if strings.TrimSpace(name) == "Link" {
			linkCol = i
			break
		}
	}
	if linkCol == -1 {
		return nil, &InputError{Path: path, Cause: fmt.Errorf(`missing "Link" column`)}
	}

	var links []string
	for _, row := range rows[1:] {
		if linkCol >= len(row) {
			continue
		}
		link := strings.TrimSpace(row[linkCol])
		if link != "" {
			links = append(links, link)
		}
	}
	return links, nil
}

// HarvestFile is ReadLinkList followed by Harvest.
func (h *Harvester) HarvestFile(ctx context.Context, path string) (Catalog, []SkipDiagnostic, error) {
	links, err := ReadLinkList(path)
	if err != nil {
		return nil, nil, err
	}
	catalog, skipped := h.Harvest(ctx, links)
	return catalog, skipped, nil
}

type pageResult struct {
	records []SeriesRecord
	skipped []SkipDiagnostic
}

// Harvest fetches every link and accumulates all extracted records.
// Per-link failures are isolated: an unreachable category page becomes a
// diagnostic, never an error. Output order is input-link order regardless
// of fetch completion order, so runs are comparable. Cancelling the
// context stops dispatching new fetches; whatever was accumulated is
// still returned.
func (h *Harvester) Harvest(ctx context.Context, links []string) (Catalog, []SkipDiagnostic) {
	ctx, span := tracer.Start(ctx, "harvester:Harvest")
	defer span.End()
	span.SetAttributes(attribute.Int("links", len(links)))

	results := make([]*pageResult, len(links))
	sem := make(chan struct{}, h.workers)
	wg := sync.WaitGroup{}

dispatch:
	for i, link := range links {
		if ctx.Err() != nil {
			slog.WarnContext(ctx, "harvest cancelled, returning partial catalog",
				"dispatched", i, "links", len(links))
			break dispatch
		}
		select {
		case <-ctx.Done():
			slog.WarnContext(ctx, "harvest cancelled, returning partial catalog",
				"dispatched", i, "links", len(links))
			break dispatch
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, link string) {
			defer wg.Done()
			defer func() { <-sem }()

			res := h.harvestPage(ctx, link)
			results[i] = &res
		}(i, link)
	}
	wg.Wait()

	var catalog Catalog
	var skipped []SkipDiagnostic
	for _, res := range results {
		if res == nil {
			continue
		}
		catalog = append(catalog, res.records...)
		skipped = append(skipped, res.skipped...)
	}

	span.SetAttributes(
		attribute.Int("records", len(catalog)),
		attribute.Int("skipped", len(skipped)),
	)
	return catalog, skipped
}

func (h *Harvester) harvestPage(ctx context.Context, link string) pageResult {
	ctx, span := tracer.Start(ctx, "harvester:harvestPage")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	var res pageResult

	doc, err := h.client.FetchPage(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch category page")
		slog.WarnContext(ctx, "skipping unreachable category page", "url", link, "err", err)
		res.skipped = append(res.skipped, SkipDiagnostic{
			Url: link, Table: -1, Row: -1, Reason: err.Error(),
		})
		return res
	}

	tables := findSeriesTables(doc)
	if tables.Length() == 0 {
		perr := &ParseError{Url: link, Table: -1, Row: -1, Reason: "no series table found"}
		slog.WarnContext(ctx, "skipping category page", "url", link, "err", perr)
		res.skipped = append(res.skipped, SkipDiagnostic{
			Url: perr.Url, Table: perr.Table, Row: perr.Row, Reason: perr.Reason,
		})
		return res
	}

	tables.Each(func(t int, table *goquery.Selection) {
		category := ResolveCategory(table, doc, link)
		mapping := MapColumns(table)

		rows := table.Find("tr")
		// the first row is the header, recognized or not
		for r := 1; r < rows.Length(); r++ {
			row := rows.Eq(r)
			if row.Find("td").Length() == 0 {
				continue // separator row
			}

			record, ok := extractRow(row, mapping, category, link)
			if !ok {
				perr := &ParseError{
					Url: link, Table: t, Row: r,
					Reason: "row does not fit the positional schema",
				}
				slog.DebugContext(ctx, "skipping malformed row", "err", perr)
				res.skipped = append(res.skipped, SkipDiagnostic{
					Url: perr.Url, Table: perr.Table, Row: perr.Row, Reason: perr.Reason,
				})
				continue
			}
			if record.Codigo == "" {
				slog.DebugContext(ctx, "record with empty code",
					"url", link, "table", t, "row", r)
			}
			res.records = append(res.records, record)
		}
	})

	return res
}

// findSeriesTables prefers the scoped selector used by current category
// pages and falls back to a bare by-class lookup for legacy ones.
func findSeriesTables(doc *goquery.Document) *goquery.Selection {
	tables := doc.Find("div.barra-series table.series")
	if tables.Length() > 0 {
		return tables
	}
	return doc.Find("table.series")
}
