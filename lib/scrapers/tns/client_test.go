package tns

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"frbcat/lib/snapshot"
	"frbcat/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const emptyPage = `<html><body><table class="results-table"></table></body></html>`

func searchServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("page") == "0" {
			fmt.Fprint(w, searchPage)
			return
		}
		fmt.Fprint(w, emptyPage)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchEntriesRequiresCredentials(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:tns")
	defer cleanup()

	client := NewClient(ClientOptions{BaseUrl: "http://localhost:1"})
	_, err := client.FetchEntries(context.Background())
	require.ErrorContains(t, err, "tns_id")
}

func TestFetchEntriesPaginates(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:tns")
	defer cleanup()

	server := searchServer(t)
	client := NewClient(ClientOptions{
		BaseUrl: server.URL,
		TnsId:   1,
		TnsName: "test_bot",
		// force a second request: one entry fills the first page
		PageLength: 1,
	})

	entries, err := client.FetchEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "FRB 20180924B", entries[0].fields["name"])
}

func TestCatalog(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:tns")
	defer cleanup()

	server := searchServer(t)
	client := NewClient(ClientOptions{
		BaseUrl: server.URL,
		TnsId:   1,
		TnsName: "test_bot",
	})

	snapshots := snapshot.Dir{Path: t.TempDir()}
	opts := DefaultOptions(snapshots)
	opts.Update = snapshot.Always

	f, err := client.Catalog(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, 1, f.Len())

	row := f.Row(0)

	name, _ := row["name"].Str()
	require.Equal(t, "FRB 20180924B", name)

	dm, ok := row["dm"].Float()
	require.True(t, ok)
	require.Equal(t, 361.42, dm)

	telescope, _ := row["telescope"].Str()
	require.Equal(t, "ASKAP", telescope)

	_, ok = row["ra_frac"].Float()
	require.True(t, ok)

	// a cleaned snapshot was written
	_, path, err := snapshots.Latest(Source)
	require.NoError(t, err)
	require.Contains(t, path, "tns_")
}

func TestCatalogFallsBackToSnapshot(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:tns")
	defer cleanup()

	server := searchServer(t)
	client := NewClient(ClientOptions{
		BaseUrl: server.URL,
		TnsId:   1,
		TnsName: "test_bot",
	})

	snapshots := snapshot.Dir{Path: t.TempDir()}
	opts := DefaultOptions(snapshots)
	opts.Update = snapshot.Always

	_, err := client.Catalog(context.Background(), opts)
	require.NoError(t, err)

	// the server goes away, the snapshot takes over
	server.Close()

	f, err := client.Catalog(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, 1, f.Len())

	dm, ok := f.Row(0)["dm"].Float()
	require.True(t, ok)
	require.Equal(t, 361.42, dm)
}
