package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/iconset-mcp/icon"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	location := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestService_LoadAll(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	mdi := writeFile(t, dir, "mdi.json", `{"prefix":"mdi","icons":{"home":{},"cog":{}}}`)
	fluent := writeFile(t, dir, "fluent.json", `{"prefix":"fluent","icons":{"home-24-regular":{}}}`)

	srv := New()
	sources, err := srv.LoadAll(ctx, []*Location{{URL: mdi}, {Prefix: "fl", URL: fluent}})
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.EqualValues(t, "mdi", sources[0].Prefix())
	assert.EqualValues(t, "fl", sources[1].Prefix())

	records, err := icon.NewCatalog(sources...).All()
	require.NoError(t, err)
	assert.EqualValues(t, []icon.Record{
		{Name: "mdi:home", Label: "home", Prefix: "mdi"},
		{Name: "mdi:cog", Label: "cog", Prefix: "mdi"},
		{Name: "fl:home-24-regular", Label: "home-24-regular", Prefix: "fl"},
	}, records)
}

func TestService_LoadCachesDocument(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	location := writeFile(t, dir, "mdi.json", `{"prefix":"mdi","icons":{"home":{}}}`)

	srv := New()
	_, err := srv.Load(ctx, &Location{URL: location})
	require.NoError(t, err)
	require.NoError(t, os.Remove(location))

	source, err := srv.Load(ctx, &Location{URL: location})
	require.NoError(t, err)
	keys, err := source.Keys()
	require.NoError(t, err)
	assert.EqualValues(t, []string{"home"}, keys)
	assert.EqualValues(t, 1, srv.documents.Len())

	srv.Reset()
	assert.EqualValues(t, 0, srv.documents.Len())
	_, err = srv.Load(ctx, &Location{URL: location})
	assert.Error(t, err)
}

func TestService_LoadErrors(t *testing.T) {
	ctx := context.Background()
	srv := New()
	_, err := srv.Load(ctx, nil)
	assert.Error(t, err)
	_, err = srv.Load(ctx, &Location{Prefix: "mdi"})
	assert.Error(t, err)
	_, err = srv.LoadAll(ctx, []*Location{{URL: filepath.Join(t.TempDir(), "missing.json")}})
	assert.Error(t, err)
}

func TestService_LoadMalformed(t *testing.T) {
	ctx := context.Background()
	location := writeFile(t, t.TempDir(), "broken.json", `{"prefix":"mdi"}`)
	source, err := New().Load(ctx, &Location{URL: location})
	require.NoError(t, err)
	_, err = icon.NewCatalog(source).All()
	assert.ErrorIs(t, err, icon.ErrMalformedSource)
}
