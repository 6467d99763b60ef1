package sconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sconf "github.com/sconf-format/go-sconf"
	"github.com/sconf-format/go-sconf/store"
)

func TestMergePatch(t *testing.T) {
	cfg, err := sconf.ParseString(`srv:
    host = localhost
    port = 80
debug = false
`)
	require.NoError(t, err)

	patch := []byte(`{"srv": {"port": 8080, "tls": true}, "debug": null}`)
	merged, err := sconf.MergePatch(cfg, patch)
	require.NoError(t, err)

	port, err := merged.Int("srv.port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	tls, err := merged.Bool("srv.tls")
	require.NoError(t, err)
	assert.True(t, tls)

	host, err := merged.String("srv.host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)

	_, ok := merged.Raw("debug")
	assert.False(t, ok, "null deletes the key")

	// surviving keys keep their order, additions follow
	assert.Equal(t, []string{"srv.host", "srv.port", "srv.tls"}, merged.Keys())

	assert.True(t, merged.Dirty(), "merge result is new content")

	// the merged configuration serializes without section errors
	text, err := merged.MarshalText()
	require.NoError(t, err)
	assert.Contains(t, string(text), "srv:")
}

func TestMergePatchYAML(t *testing.T) {
	cfg, err := sconf.ParseString("a = 1\n")
	require.NoError(t, err)

	merged, err := sconf.MergePatch(cfg, []byte("b: added\n"))
	require.NoError(t, err)

	v, ok := merged.Raw("b")
	require.True(t, ok)
	assert.Equal(t, store.Scalar("added"), v)
	a, err := merged.String("a")
	require.NoError(t, err)
	assert.Equal(t, "1", a)
}

func TestMergePatchList(t *testing.T) {
	cfg, err := sconf.ParseString("tags = [a, b]\n")
	require.NoError(t, err)

	merged, err := sconf.MergePatch(cfg, []byte(`{"tags": ["x"]}`))
	require.NoError(t, err)

	tags, err := merged.Strings("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, tags, "arrays replace, not merge")
}

func TestMergePatchBad(t *testing.T) {
	cfg, err := sconf.ParseString("a = 1\n")
	require.NoError(t, err)

	_, err = sconf.MergePatch(cfg, []byte("{unclosed"))
	require.Error(t, err)
}
