package bcrp

import (
	"bytes"
	"context"
	"net/http/cookiejar"
	"time"

	"bcrpharvest/lib/restyutil"
	"bcrpharvest/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

const defaultApiBaseUrl = "https://estadisticas.bcrp.gob.pe/estadisticas/series/api"

// the statistics site rejects default client identities, so a pinned
// browser user agent is required
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Client struct {
	Http       *resty.Client
	apiBaseUrl string
}

type ClientOptions struct {
	// defaults to the public BCRP statistics endpoint
	ApiBaseUrl string
	// defaults to 20s, applies per request
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", userAgent)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = time.Second * 20
	}
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/bcrp/http")
	restyutil.DumpClient(client, restyInstrumentOutput)

	apiBaseUrl := opts.ApiBaseUrl
	if apiBaseUrl == "" {
		apiBaseUrl = defaultApiBaseUrl
	}

	return &Client{
		Http:       client,
		apiBaseUrl: apiBaseUrl,
	}, nil
}

// FetchPage retrieves one category page and returns the parsed document.
// A transport failure or non-2xx status yields a *FetchError; retrying is
// the caller's concern.
func (c *Client) FetchPage(ctx context.Context, url string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:FetchPage")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return nil, &FetchError{Url: url, Cause: err}
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		span.SetStatus(codes.Error, "unexpected status")
		return nil, &FetchError{Url: url, Status: res.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, &FetchError{Url: url, Cause: err}
	}
	return doc, nil
}
