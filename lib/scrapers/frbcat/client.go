// Package frbcat retrieves the FRBCAT archive (frbcat.org) and
// normalizes it into one canonical row per detected burst.
package frbcat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"frbcat/lib/frame"
	"frbcat/lib/restyutil"
	"frbcat/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/frbcat")

const DefaultBaseUrl = "http://frbcat.org"

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// BaseUrl defaults to the public frbcat.org archive.
	BaseUrl string
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/frbcat/http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	return &Client{http: client}
}

// productsTable fetches one JSON endpoint and converts its "products"
// list into a frame. A non-JSON or empty payload returns nil without
// an error: several FRBCAT endpoints legitimately return nothing.
func (c *Client) productsTable(ctx context.Context, endpoint string) (*frame.Frame, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Products []map[string]any `json:"products"`
	}
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		slog.DebugContext(ctx, "skipping non-json products payload", "endpoint", endpoint)
		return nil, nil
	}
	if len(payload.Products) == 0 {
		return nil, nil
	}

	f := frame.New()
	for _, product := range payload.Products {
		row := frame.Row{}
		for key, value := range product {
			row[key] = cellFromJson(value)
		}
		f.Append(row)
	}
	return f, nil
}

func cellFromJson(value any) frame.Value {
	switch v := value.(type) {
	case nil:
		return frame.Null
	case string:
		if v == "" || v == "null" {
			return frame.Null
		}
		return frame.String(v)
	case float64:
		return frame.Float(v)
	case bool:
		return frame.String(fmt.Sprint(v))
	default:
		return frame.String(fmt.Sprint(v))
	}
}

// concatTables fetches `base<ending>` for every ending and stacks the
// resulting frames.
func (c *Client) concatTables(ctx context.Context, base string, endings []string) (*frame.Frame, error) {
	out := frame.New()
	found := false
	for _, ending := range endings {
		f, err := c.productsTable(ctx, base+ending)
		if err != nil {
			return nil, err
		}
		if f == nil {
			continue
		}
		found = true
		for _, row := range f.Rows() {
			out.Append(row)
		}
	}
	if !found {
		return nil, nil
	}
	return out, nil
}

// FetchRaw downloads and merges the FRBCAT tables: the master FRB
// list, per-FRB analyses, and the notes/publication side tables.
func (c *Client) FetchRaw(ctx context.Context) (*frame.Frame, error) {
	ctx, span := tracer.Start(ctx, "FetchRaw")
	defer span.End()

	slog.InfoContext(ctx, "attempting to retrieve FRBCAT", "base_url", c.http.BaseURL)

	slog.InfoContext(ctx, "getting FRB names")
	main, err := c.productsTable(ctx, "/products/")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch FRB names")
		return nil, err
	}
	if main == nil {
		err := fmt.Errorf("FRBCAT main product list is empty")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var names []string
	for _, row := range main.Rows() {
		if name, ok := row["frb_name"].Str(); ok {
			names = append(names, name)
		}
	}

	slog.InfoContext(ctx, "getting subsequent analyses", "frbs", len(names))
	frbs, err := c.concatTables(ctx, "/product/", names)
	if err != nil {
		return nil, err
	}
	if frbs == nil {
		return nil, fmt.Errorf("no FRBCAT analyses found for %d FRBs", len(names))
	}

	// the side tables are keyed by row ordinal in the analyses table
	ordinals := make([]string, frbs.Len())
	for i := range ordinals {
		ordinals[i] = fmt.Sprint(i)
	}

	slog.InfoContext(ctx, "getting notes on FRBs")
	frbNotes, err := c.concatTables(ctx, "/frbnotes/", ordinals)
	if err != nil {
		return nil, err
	}
	if frbNotes != nil {
		frbNotes.AddPrefix("frb_notes_")
	}

	slog.InfoContext(ctx, "getting radio observation parameters")
	ropNotes, err := c.concatTables(ctx, "/ropnotes/", ordinals)
	if err != nil {
		return nil, err
	}
	if ropNotes != nil {
		ropNotes.AddPrefix("rop_notes_")
	}

	slog.InfoContext(ctx, "getting radio measurement parameters")
	rmpPubs, err := c.concatTables(ctx, "/rmppubs/", ordinals)
	if err != nil {
		return nil, err
	}
	if rmpPubs != nil {
		rmpPubs.AddPrefix("rmp_pub_")
	}

	merged := frbs
	merged = joinIfPresent(ctx, merged, frbNotes, "frb_id", "frb_notes_frb_id")
	merged = joinIfPresent(ctx, merged, ropNotes, "rop_id", "rop_notes_rop_id")
	merged = joinIfPresent(ctx, merged, rmpPubs, "rmp_id", "rmp_pub_rmp_id")

	slog.InfoContext(ctx, "succeeded", "rows", merged.Len())
	return merged, nil
}

// joinIfPresent left-joins the side table when both join columns
// exist; some FRBCAT side tables are empty or unkeyed.
func joinIfPresent(ctx context.Context, left, right *frame.Frame, leftOn, rightOn string) *frame.Frame {
	if right == nil {
		return left
	}
	if !left.HasColumn(leftOn) || !right.HasColumn(rightOn) {
		slog.DebugContext(ctx, "skipping unkeyed side table", "left_on", leftOn, "right_on", rightOn)
		return left
	}
	joined, err := frame.LeftJoin(left, right, leftOn, rightOn)
	if err != nil {
		slog.WarnContext(ctx, "failed to join side table", "err", err)
		return left
	}
	return joined
}
