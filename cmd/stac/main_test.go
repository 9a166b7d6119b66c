package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	rootJSON = `{
		"type": "Catalog",
		"stac_version": "1.0.0",
		"id": "root",
		"description": "Test API",
		"links": [{"rel": "child", "href": "collections/demo"}]
	}`
	collectionJSON = `{
		"type": "Collection",
		"stac_version": "1.0.0",
		"id": "demo",
		"description": "Demo collection",
		"license": "CC-BY-4.0",
		"keywords": ["demo"],
		"providers": [{"name": "ACME", "roles": ["host"]}],
		"extent": {
			"spatial": {"bbox": [[-10, -10, 10, 10]]},
			"temporal": {"interval": [["2020-01-01T00:00:00Z", null]]}
		},
		"links": [{"rel": "items", "href": "collections/demo/items"}]
	}`
	featureJSON = `{
		"type": "Feature",
		"stac_version": "1.0.0",
		"id": "%s",
		"geometry": {"type": "Point", "coordinates": [1, 2]},
		"properties": {"datetime": "2020-02-02T00:00:00Z"},
		"links": [],
		"assets": {"data": {"href": "https://example.com/%s.tif"}}
	}`
)

type apiServer struct {
	*httptest.Server

	mu      sync.Mutex
	queries []url.Values
}

func (s *apiServer) lastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return nil
	}
	return s.queries[len(s.queries)-1]
}

func newAPIServer(t *testing.T) *apiServer {
	t.Helper()
	s := &apiServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.queries = append(s.queries, r.URL.Query())
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/":
			fmt.Fprint(w, rootJSON)
		case "/collections/demo":
			fmt.Fprint(w, collectionJSON)
		case "/collections/demo/items":
			if r.URL.Query().Get("token") == "2" {
				fmt.Fprintf(w, `{"type": "FeatureCollection", "features": [`+featureJSON+`], "links": []}`, "b", "b")
				return
			}
			fmt.Fprintf(w, `{"type": "FeatureCollection", "features": [`+featureJSON+`],
				"links": [{"rel": "next", "href": "collections/demo/items?token=2"}]}`, "a", "a")
		case "/collections/demo/items/a":
			fmt.Fprintf(w, featureJSON, "a", "a")
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"code": "NotFound", "description": "not found"}`)
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	argv := append([]string{"stac", "--log-format", "discard"}, args...)
	err := newApp(&stdout, &stderr).Run(context.Background(), argv)
	return stdout.String(), err
}

func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m), out)
	return m
}

func TestCatalogCommand(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "--url", srv.URL, "catalog")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, "Catalog", got["kind"])
	assert.Equal(t, "root", got["id"])
	assert.Equal(t, "Test API", got["description"])
	assert.Len(t, got["links"], 1)
}

func TestChildrenCommand(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "--url", srv.URL, "children")
	require.NoError(t, err)

	var children []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &children))
	require.Len(t, children, 1)
	assert.Equal(t, "Collection", children[0]["kind"])
	assert.Equal(t, "demo", children[0]["id"])
}

func TestCollectionCommand(t *testing.T) {
	srv := newAPIServer(t)

	for _, ref := range []string{"demo", "collections/demo", srv.URL + "/collections/demo"} {
		t.Run(ref, func(t *testing.T) {
			out, err := run(t, "--url", srv.URL, "-o", "yaml", "collection", ref)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, yaml.Unmarshal([]byte(out), &got), out)
			assert.Equal(t, "demo", got["id"])
			assert.Equal(t, "CC-BY-4.0", got["license"])
			assert.Equal(t, []any{"demo"}, got["keywords"])
			providers := got["providers"].([]any)
			require.Len(t, providers, 1)
			assert.Equal(t, "ACME", providers[0].(map[string]any)["name"])
			assert.Contains(t, got, "extent")
		})
	}
}

func TestItemsCommand(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "--url", srv.URL, "items", "--filter", "limit=1", "--filter", "bbox=0,0,1,1", "demo")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.EqualValues(t, 1, got["count"])
	assert.Contains(t, got["next"], "token=2")
	assert.Equal(t, url.Values{"limit": {"1"}, "bbox": {"0,0,1,1"}}, srv.lastQuery())
}

func TestItemsCommandPages(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "--url", srv.URL, "items", "--pages", "3", "demo")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.EqualValues(t, 2, got["count"])
	assert.NotContains(t, got, "next")
	features := got["features"].([]any)
	require.Len(t, features, 2)
	assert.Equal(t, "a", features[0].(map[string]any)["id"])
	assert.Equal(t, "b", features[1].(map[string]any)["id"])
}

func TestItemsCommandByID(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "--url", srv.URL, "items", "--id", "a", "demo")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, "a", got["id"])
	assert.Equal(t, "2020-02-02T00:00:00Z", got["datetime"])
	assert.Equal(t, []any{"data"}, got["assets"])
}

func TestItemsCommandErrors(t *testing.T) {
	srv := newAPIServer(t)

	_, err := run(t, "--url", srv.URL, "items")
	assert.ErrorContains(t, err, "collection href or ID is required")

	_, err = run(t, "--url", srv.URL, "items", "--filter", "nonsense", "demo")
	assert.ErrorContains(t, err, "invalid filter")

	_, err = run(t, "--url", srv.URL, "items", "--pages", "0", "demo")
	assert.ErrorContains(t, err, "--pages")

	_, err = run(t, "--url", srv.URL, "collection", "missing")
	assert.ErrorContains(t, err, "404")
}

func TestMissingURL(t *testing.T) {
	t.Setenv("STAC_URL", "")

	_, err := run(t, "catalog")
	assert.ErrorContains(t, err, "--url")
}

func TestSchemasCommand(t *testing.T) {
	out, err := run(t, "schemas")
	require.NoError(t, err)

	var versions []string
	require.NoError(t, json.Unmarshal([]byte(out), &versions))
	assert.Equal(t, []string{"0.9.0", "1.0.0"}, versions)

	out, err = run(t, "schemas", "show", "1.0.0", "item")
	require.NoError(t, err)
	assert.Contains(t, decodeJSON(t, out), "properties")

	_, err = run(t, "schemas", "show", "2.0.0", "item")
	assert.Error(t, err)
}

func TestSettingsPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stac.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\n"), 0o600))

	out, err := run(t, "--config", path, "schemas")
	require.NoError(t, err)
	var versions []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &versions))
	assert.Equal(t, []string{"0.9.0", "1.0.0"}, versions)
	assert.NotContains(t, out, "[")

	out, err = run(t, "--config", path, "-o", "json", "schemas")
	require.NoError(t, err)
	assert.Contains(t, out, "[")
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    url.Values
		wantErr bool
	}{
		{name: "none", pairs: nil, want: nil},
		{name: "repeated key", pairs: []string{"a=1", "a=2"}, want: url.Values{"a": {"1", "2"}}},
		{name: "empty value", pairs: []string{"q="}, want: url.Values{"q": {""}}},
		{name: "value with equals", pairs: []string{"filter=a=b"}, want: url.Values{"filter": {"a=b"}}},
		{name: "missing equals", pairs: []string{"abc"}, wantErr: true},
		{name: "empty key", pairs: []string{"=1"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFilter(tt.pairs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
