package sconf

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/sconf-format/go-sconf/store"
)

// String returns the scalar text at key.
func (c *Config) String(key string) (string, error) {
	v, ok := c.st.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", store.ErrNoKey, key)
	}
	if v.IsList() {
		return "", fmt.Errorf("%w: value at %q is not a string", store.ErrFormat, key)
	}
	return v.Str, nil
}

// Bool parses the value at key with strconv.ParseBool.
func (c *Config) Bool(key string) (bool, error) {
	s, err := c.String(key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: value at %q is not a bool", store.ErrFormat, key)
	}
	return b, nil
}

// Int parses the value at key as an int.
func (c *Config) Int(key string) (int, error) {
	s, err := c.String(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: value at %q is not an int", store.ErrFormat, key)
	}
	return n, nil
}

// Int64 parses the value at key as an int64.
func (c *Config) Int64(key string) (int64, error) {
	s, err := c.String(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: value at %q is not an int64", store.ErrFormat, key)
	}
	return n, nil
}

// Int16 parses the value at key as an int16.
func (c *Config) Int16(key string) (int16, error) {
	s, err := c.String(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: value at %q is not an int16", store.ErrFormat, key)
	}
	return int16(n), nil
}

// Int8 parses the value at key as an int8.
func (c *Config) Int8(key string) (int8, error) {
	s, err := c.String(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: value at %q is not an int8", store.ErrFormat, key)
	}
	return int8(n), nil
}

// Float64 parses the value at key as a float64.
func (c *Config) Float64(key string) (float64, error) {
	s, err := c.String(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: value at %q is not a float64", store.ErrFormat, key)
	}
	return f, nil
}

// Float32 parses the value at key as a float32.
func (c *Config) Float32(key string) (float32, error) {
	s, err := c.String(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: value at %q is not a float32", store.ErrFormat, key)
	}
	return float32(f), nil
}

// Char returns the first rune of the scalar at key.
func (c *Config) Char(key string) (rune, error) {
	s, err := c.String(key)
	if err != nil {
		return 0, err
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0, fmt.Errorf("%w: value at %q is empty", store.ErrFormat, key)
	}
	return r, nil
}

// Strings returns a copy of the list at key.
func (c *Config) Strings(key string) ([]string, error) {
	v, ok := c.st.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", store.ErrNoKey, key)
	}
	if !v.IsList() {
		return nil, fmt.Errorf("%w: value at %q is not a list", store.ErrFormat, key)
	}
	return append([]string(nil), v.Elems...), nil
}

// orSet inserts def when key is absent and returns the cleaned key.
func (c *Config) orSet(key string, def store.Value) (string, error) {
	key = clean(key)
	if _, err := c.GetOrSet(key, def); err != nil {
		return "", err
	}
	return key, nil
}

// StringOrSet returns the scalar at key, inserting def when absent.
func (c *Config) StringOrSet(key, def string) (string, error) {
	key, err := c.orSet(key, store.Scalar(clean(def)))
	if err != nil {
		return "", err
	}
	return c.String(key)
}

// BoolOrSet returns the bool at key, inserting def when absent.
func (c *Config) BoolOrSet(key string, def bool) (bool, error) {
	key, err := c.orSet(key, store.Scalar(strconv.FormatBool(def)))
	if err != nil {
		return false, err
	}
	return c.Bool(key)
}

// IntOrSet returns the int at key, inserting def when absent.
func (c *Config) IntOrSet(key string, def int) (int, error) {
	key, err := c.orSet(key, store.Scalar(strconv.Itoa(def)))
	if err != nil {
		return 0, err
	}
	return c.Int(key)
}

// Int64OrSet returns the int64 at key, inserting def when absent.
func (c *Config) Int64OrSet(key string, def int64) (int64, error) {
	key, err := c.orSet(key, store.Scalar(strconv.FormatInt(def, 10)))
	if err != nil {
		return 0, err
	}
	return c.Int64(key)
}

// Int16OrSet returns the int16 at key, inserting def when absent.
func (c *Config) Int16OrSet(key string, def int16) (int16, error) {
	key, err := c.orSet(key, store.Scalar(strconv.FormatInt(int64(def), 10)))
	if err != nil {
		return 0, err
	}
	return c.Int16(key)
}

// Int8OrSet returns the int8 at key, inserting def when absent.
func (c *Config) Int8OrSet(key string, def int8) (int8, error) {
	key, err := c.orSet(key, store.Scalar(strconv.FormatInt(int64(def), 10)))
	if err != nil {
		return 0, err
	}
	return c.Int8(key)
}

// Float64OrSet returns the float64 at key, inserting def when absent.
func (c *Config) Float64OrSet(key string, def float64) (float64, error) {
	key, err := c.orSet(key, store.Scalar(strconv.FormatFloat(def, 'f', -1, 64)))
	if err != nil {
		return 0, err
	}
	return c.Float64(key)
}

// Float32OrSet returns the float32 at key, inserting def when absent.
func (c *Config) Float32OrSet(key string, def float32) (float32, error) {
	key, err := c.orSet(key, store.Scalar(strconv.FormatFloat(float64(def), 'f', -1, 32)))
	if err != nil {
		return 0, err
	}
	return c.Float32(key)
}

// CharOrSet returns the first rune at key, inserting def when absent.
func (c *Config) CharOrSet(key string, def rune) (rune, error) {
	key, err := c.orSet(key, store.Scalar(string(def)))
	if err != nil {
		return 0, err
	}
	return c.Char(key)
}

// StringsOrSet returns the list at key, inserting def when absent.
func (c *Config) StringsOrSet(key string, def []string) ([]string, error) {
	key, err := c.orSet(key, store.List(def...))
	if err != nil {
		return nil, err
	}
	return c.Strings(key)
}
