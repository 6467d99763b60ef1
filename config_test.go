package sconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sconf "github.com/sconf-format/go-sconf"
	"github.com/sconf-format/go-sconf/store"
)

func TestNew(t *testing.T) {
	cfg, err := sconf.New(
		"srv.net.host", "localhost",
		"srv.net.ports", "[80, 443]",
		"debug", "false",
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"srv.net.host", "srv.net.ports", "debug"}, cfg.Keys())
	assert.False(t, cfg.Dirty())

	want := `srv:
    net:
        host = localhost
        ports = [80, 443]
debug = false`
	assert.Equal(t, want, cfg.Text())
}

func TestNewErrs(t *testing.T) {
	_, err := sconf.New("only-key")
	require.ErrorIs(t, err, store.ErrKey)

	_, err = sconf.New("", "v")
	require.ErrorIs(t, err, store.ErrFormat)

	_, err = sconf.New("k", "   ")
	require.ErrorIs(t, err, store.ErrFormat)
}

func TestNewNormalizes(t *testing.T) {
	cfg, err := sconf.New("\tk\t", "  v  ")
	require.NoError(t, err)
	s, err := cfg.String("k")
	require.NoError(t, err)
	assert.Equal(t, "v", s)
}

func TestParseString(t *testing.T) {
	cfg, err := sconf.ParseString("top:\n    sub:\n        k = v\nother = 1\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"top.sub.k", "other"}, cfg.Keys())
	assert.Equal(t, 2, cfg.Len())

	v, ok := cfg.Raw("top.sub.k")
	require.True(t, ok)
	assert.Equal(t, store.Scalar("v"), v)
	_, ok = cfg.Raw("missing")
	assert.False(t, ok)
}

func TestSetKinds(t *testing.T) {
	cfg, err := sconf.New()
	require.NoError(t, err)

	require.NoError(t, cfg.Set("s", "text"))
	require.NoError(t, cfg.Set("list", "[a, b]"))
	require.NoError(t, cfg.Set("slice", []string{"x", "y"}))
	require.NoError(t, cfg.Set("b", true))
	require.NoError(t, cfg.Set("i", 42))
	require.NoError(t, cfg.Set("i64", int64(-7)))
	require.NoError(t, cfg.Set("f", 2.5))
	require.NoError(t, cfg.Set("val", store.Scalar("[not a list]")))

	got := func(k string) store.Value {
		v, ok := cfg.Raw(k)
		require.True(t, ok, k)
		return v
	}
	assert.Equal(t, store.Scalar("text"), got("s"))
	assert.Equal(t, store.List("a", "b"), got("list"))
	assert.Equal(t, store.List("x", "y"), got("slice"))
	assert.Equal(t, store.Scalar("true"), got("b"))
	assert.Equal(t, store.Scalar("42"), got("i"))
	assert.Equal(t, store.Scalar("-7"), got("i64"))
	assert.Equal(t, store.Scalar("2.5"), got("f"))
	assert.Equal(t, store.Scalar("[not a list]"), got("val"))
}

func TestSetErrs(t *testing.T) {
	cfg, err := sconf.New()
	require.NoError(t, err)

	require.ErrorIs(t, cfg.Set("", "v"), store.ErrKey)
	require.ErrorIs(t, cfg.Set("=", "v"), store.ErrKey)
	require.ErrorIs(t, cfg.Set("k", nil), store.ErrKey)
	require.ErrorIs(t, cfg.Set("k", struct{}{}), store.ErrKey)
	require.ErrorIs(t, cfg.Set("k", "   "), store.ErrFormat)
}

func TestSetRegistersSections(t *testing.T) {
	cfg, err := sconf.New()
	require.NoError(t, err)
	require.NoError(t, cfg.Set("a.b.c", "1"))

	text, err := cfg.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "a:\n    b:\n        c = 1\n", string(text))
}

func TestChangeGate(t *testing.T) {
	cfg, err := sconf.ParseString("a = 1\nb = [x, y]\n")
	require.NoError(t, err)
	assert.False(t, cfg.Dirty())

	// writing the value already present is not a change
	require.NoError(t, cfg.Set("a", "1"))
	require.NoError(t, cfg.Set("b", []string{"x", "y"}))
	assert.False(t, cfg.Dirty())

	require.NoError(t, cfg.Set("a", "2"))
	assert.True(t, cfg.Dirty())
}

func TestDelete(t *testing.T) {
	cfg, err := sconf.ParseString("a = 1\nb = 2\n")
	require.NoError(t, err)

	assert.True(t, cfg.Delete("a"))
	assert.False(t, cfg.Delete("a"))
	assert.Equal(t, []string{"b"}, cfg.Keys())
	assert.True(t, cfg.Dirty())
}

func TestGetOrSet(t *testing.T) {
	cfg, err := sconf.ParseString("a = 1\n")
	require.NoError(t, err)

	v, err := cfg.GetOrSet("a", store.Scalar("9"))
	require.NoError(t, err)
	assert.Equal(t, store.Scalar("1"), v)
	assert.False(t, cfg.Dirty())

	v, err = cfg.GetOrSet("fresh", store.Scalar("def"))
	require.NoError(t, err)
	assert.Equal(t, store.Scalar("def"), v)
	assert.True(t, cfg.Dirty())

	_, err = cfg.GetOrSet("", store.Scalar("x"))
	require.ErrorIs(t, err, store.ErrKey)
}

func TestValuesOrder(t *testing.T) {
	cfg, err := sconf.ParseString("a = 1\nb = [x]\n")
	require.NoError(t, err)
	assert.Equal(t, []store.Value{store.Scalar("1"), store.List("x")}, cfg.Values())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, sconf.Version)
}
