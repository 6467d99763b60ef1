package sconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sconf "github.com/sconf-format/go-sconf"
	"github.com/sconf-format/go-sconf/store"
)

func testConfig(t *testing.T) *sconf.Config {
	t.Helper()
	cfg, err := sconf.ParseString(`name = demo
flag = true
count = 42
big = 9223372036854775807
small = -12
tiny = 7
ratio = 2.75
letter = über
tags = [a, b, c]
`)
	require.NoError(t, err)
	return cfg
}

func TestGetters(t *testing.T) {
	cfg := testConfig(t)

	s, err := cfg.String("name")
	require.NoError(t, err)
	assert.Equal(t, "demo", s)

	b, err := cfg.Bool("flag")
	require.NoError(t, err)
	assert.True(t, b)

	n, err := cfg.Int("count")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n64, err := cfg.Int64("big")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), n64)

	n16, err := cfg.Int16("small")
	require.NoError(t, err)
	assert.Equal(t, int16(-12), n16)

	n8, err := cfg.Int8("tiny")
	require.NoError(t, err)
	assert.Equal(t, int8(7), n8)

	f64, err := cfg.Float64("ratio")
	require.NoError(t, err)
	assert.Equal(t, 2.75, f64)

	f32, err := cfg.Float32("ratio")
	require.NoError(t, err)
	assert.Equal(t, float32(2.75), f32)

	r, err := cfg.Char("letter")
	require.NoError(t, err)
	assert.Equal(t, 'ü', r)

	l, err := cfg.Strings("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, l)
}

func TestGettersAbsent(t *testing.T) {
	cfg := testConfig(t)

	_, err := cfg.String("missing")
	require.ErrorIs(t, err, store.ErrNoKey)
	assert.Contains(t, err.Error(), "missing")

	_, err = cfg.Int("missing")
	require.ErrorIs(t, err, store.ErrNoKey)

	_, err = cfg.Strings("missing")
	require.ErrorIs(t, err, store.ErrNoKey)
}

func TestGettersCoercion(t *testing.T) {
	cfg := testConfig(t)

	_, err := cfg.Bool("name")
	require.ErrorIs(t, err, store.ErrFormat)
	assert.Contains(t, err.Error(), `value at "name" is not a bool`)

	_, err = cfg.Int("name")
	require.ErrorIs(t, err, store.ErrFormat)

	_, err = cfg.Int8("count")
	require.NoError(t, err, "42 fits in int8")

	_, err = cfg.Int8("big")
	require.ErrorIs(t, err, store.ErrFormat)

	_, err = cfg.Float64("name")
	require.ErrorIs(t, err, store.ErrFormat)

	// lists do not coerce to scalars, scalars not to lists
	_, err = cfg.String("tags")
	require.ErrorIs(t, err, store.ErrFormat)
	_, err = cfg.Strings("name")
	require.ErrorIs(t, err, store.ErrFormat)
}

func TestStringsReturnsCopy(t *testing.T) {
	cfg := testConfig(t)
	l, err := cfg.Strings("tags")
	require.NoError(t, err)
	l[0] = "mutated"

	l2, err := cfg.Strings("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, l2)
}

func TestOrSetInserts(t *testing.T) {
	cfg, err := sconf.New()
	require.NoError(t, err)

	s, err := cfg.StringOrSet("s", "def")
	require.NoError(t, err)
	assert.Equal(t, "def", s)

	b, err := cfg.BoolOrSet("b", true)
	require.NoError(t, err)
	assert.True(t, b)

	n, err := cfg.IntOrSet("i", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n64, err := cfg.Int64OrSet("i64", -4)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), n64)

	n16, err := cfg.Int16OrSet("i16", 5)
	require.NoError(t, err)
	assert.Equal(t, int16(5), n16)

	n8, err := cfg.Int8OrSet("i8", 6)
	require.NoError(t, err)
	assert.Equal(t, int8(6), n8)

	f64, err := cfg.Float64OrSet("f64", 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, f64)

	f32, err := cfg.Float32OrSet("f32", 0.25)
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), f32)

	r, err := cfg.CharOrSet("c", 'x')
	require.NoError(t, err)
	assert.Equal(t, 'x', r)

	l, err := cfg.StringsOrSet("l", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, l)

	assert.True(t, cfg.Dirty(), "defaults were inserted")

	// every inserted default is retrievable through Raw
	v, ok := cfg.Raw("i")
	require.True(t, ok)
	assert.Equal(t, store.Scalar("3"), v)
}

func TestOrSetReadsExisting(t *testing.T) {
	cfg := testConfig(t)

	n, err := cfg.IntOrSet("count", 99)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.False(t, cfg.Dirty(), "no default inserted")

	// present but unparseable for the requested type
	_, err = cfg.IntOrSet("name", 99)
	require.ErrorIs(t, err, store.ErrFormat)
}
