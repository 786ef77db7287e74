package bcrp

import (
	"net/url"
	"regexp"
	"strings"

	"bcrpharvest/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// categorySelectors mark category titles on pages that don't put a
// heading directly above the table.
var categorySelectors = []string{
	"h2.categoria",
	"h1.categoria",
	".titulo-categoria",
	"#titulo-categoria",
}

var breadcrumbSelectors = []string{
	".breadcrumb li:last-child",
	"nav.miga a:last-child",
}

// trailing " - (unit)" suffix on heading text, e.g.
// "Comercio Exterior - (millones US$)"
var unitSuffix = regexp.MustCompile(`\s*-\s*\(.*\)\s*$`)

// ResolveCategory determines the category name for the series listed in
// `table`. Category pages are not uniformly structured, so an ordered
// cascade of strategies is tried, first non-empty result wins:
//
//  1. nearest heading preceding the table in document order
//  2. known category title selectors
//  3. document title, breadcrumb, then the last path segment of sourceUrl
//
// Returns "" when every strategy fails.
func ResolveCategory(table *goquery.Selection, doc *goquery.Document, sourceUrl string) string {
	strategies := []func() string{
		func() string { return categoryFromHeading(table, doc) },
		func() string { return categoryFromSelectors(doc) },
		func() string { return categoryFromTitle(doc) },
		func() string { return categoryFromBreadcrumb(doc) },
		func() string { return categoryFromUrl(sourceUrl) },
	}
	for _, strategy := range strategies {
		if name := strategy(); name != "" {
			return name
		}
	}
	return ""
}

func categoryFromHeading(table *goquery.Selection, doc *goquery.Document) string {
	if len(table.Nodes) == 0 {
		return ""
	}
	heading := htmlutil.PrecedingHeading(doc, table.Nodes[0])
	if heading == nil {
		return ""
	}
	text := htmlutil.CleanText(htmlutil.GetText(heading))
	return strings.TrimSpace(unitSuffix.ReplaceAllString(text, ""))
}

func categoryFromSelectors(doc *goquery.Document) string {
	for _, selector := range categorySelectors {
		text := htmlutil.CleanText(doc.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

func categoryFromTitle(doc *goquery.Document) string {
	return htmlutil.CleanText(doc.Find("title").First().Text())
}

func categoryFromBreadcrumb(doc *goquery.Document) string {
	for _, selector := range breadcrumbSelectors {
		text := htmlutil.CleanText(doc.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

var pathSeparators = strings.NewReplacer("-", " ", "_", " ", ".", " ")

func categoryFromUrl(sourceUrl string) string {
	parsed, err := url.Parse(sourceUrl)
	if err != nil {
		return ""
	}
	segment := parsed.Path
	if idx := strings.LastIndex(strings.TrimSuffix(segment, "/"), "/"); idx != -1 {
		segment = strings.TrimSuffix(segment, "/")[idx+1:]
	}
	segment = pathSeparators.Replace(segment)
	return titleCase(strings.TrimSpace(segment))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
