// Package tns retrieves Fast Radio Burst records from the Transient
// Name Server (wis-tns.org) search pages and normalizes them into one
// canonical row per burst.
package tns

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"frbcat/lib/restyutil"
	"frbcat/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/tns")

const DefaultBaseUrl = "https://www.wis-tns.org"

// DefaultPageLength is how many objects a search page is asked for.
const DefaultPageLength = 500

type Client struct {
	http       *resty.Client
	pageLength int
	tnsId      int
	tnsName    string
}

type ClientOptions struct {
	// BaseUrl defaults to the public wis-tns.org server.
	BaseUrl string
	// TnsId and TnsName identify a registered TNS bot; the server
	// rejects anonymous scrapes.
	TnsId   int
	TnsName string
	// PageLength overrides DefaultPageLength, mostly for tests.
	PageLength int
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	pageLength := opts.PageLength
	if pageLength == 0 {
		pageLength = DefaultPageLength
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(time.Second * 30)
	// the server expects the bot credentials python-dict style
	client.SetHeader("User-Agent", fmt.Sprintf(
		"{'tns_id': %d, 'type': 'user', 'name': '%s'}",
		opts.TnsId, opts.TnsName,
	))
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "scrapers/tns/http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	return &Client{
		http:       client,
		pageLength: pageLength,
		tnsId:      opts.TnsId,
		tnsName:    opts.TnsName,
	}
}

// FetchEntries walks the paginated FRB search results until a page
// comes back short.
func (c *Client) FetchEntries(ctx context.Context) ([]entry, error) {
	ctx, span := tracer.Start(ctx, "FetchEntries")
	defer span.End()

	if c.tnsId == 0 || c.tnsName == "" {
		err := fmt.Errorf("provide tns_id and tns_name when updating TNS data")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	slog.InfoContext(ctx, "attempting to retrieve FRBs from the Transient Name Server")

	var entries []entry
	for page := 0; ; page++ {
		res, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"include_frb": "1",
				"objtype[]":   "130",
				"num_page":    fmt.Sprint(c.pageLength),
				"page":        fmt.Sprint(page),
			}).
			Get("/search")
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch search page")
			return nil, err
		}

		pageEntries, err := parseSearchPage(res.Body(), entries)
		if err != nil {
			return nil, err
		}
		added := len(pageEntries) - len(entries)
		entries = pageEntries

		slog.InfoContext(ctx, "fetched search page", "page", page, "entries", len(entries))

		// a short or empty page means the results ran out
		if added == 0 || len(entries)%c.pageLength != 0 {
			break
		}
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))
	return entries, nil
}
