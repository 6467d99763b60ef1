package sconf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/sconf-format/go-sconf/encode"
	"github.com/sconf-format/go-sconf/parse"
	"github.com/sconf-format/go-sconf/store"
	"github.com/sconf-format/go-sconf/token"
)

// Version is the library release version.
const Version = "1.2.0"

// Config is an ordered key/value configuration with dotted section
// paths. It wraps a store and adds typed access, file persistence and
// change tracking. Config is not safe for concurrent use.
type Config struct {
	st *store.Store
}

// New builds a configuration from pairwise key/value arguments. Keys
// and values are trimmed with tabs normalized to spaces, dotted keys
// register their section paths, and values in [brackets] parse as
// lists. The result counts as unchanged.
func New(kv ...string) (*Config, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("%w: odd key/value count %d", store.ErrKey, len(kv))
	}
	c := &Config{st: store.New()}
	for i := 0; i < len(kv); i += 2 {
		key, val := clean(kv[i]), clean(kv[i+1])
		if key == "" {
			return nil, fmt.Errorf("%w: empty key at position %d", store.ErrFormat, i)
		}
		if val == "" {
			return nil, fmt.Errorf("%w: empty value for %q", store.ErrFormat, key)
		}
		c.registerSections(key)
		c.st.Put(key, store.ParseValue(val))
	}
	c.st.MarkClean()
	return c, nil
}

// Parse reads configuration text. Options from the parse package
// apply, so YAML and JSON input can be selected with parse.ParseYAML
// and parse.ParseJSON.
func Parse(d []byte, opts ...parse.ParseOption) (*Config, error) {
	st, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return &Config{st: st}, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...parse.ParseOption) (*Config, error) {
	return Parse([]byte(s), opts...)
}

// FromStore wraps an existing store.
func FromStore(st *store.Store) *Config {
	return &Config{st: st}
}

// Store returns the underlying store.
func (c *Config) Store() *store.Store {
	return c.st
}

// Raw returns the value at key without coercion.
func (c *Config) Raw(key string) (store.Value, bool) {
	return c.st.Get(key)
}

// Keys returns the keys in entry order.
func (c *Config) Keys() []string {
	return c.st.Keys()
}

// Values returns the values in entry order.
func (c *Config) Values() []store.Value {
	return c.st.Values()
}

// Len returns the number of entries.
func (c *Config) Len() int {
	return c.st.Len()
}

// Dirty reports whether the configuration changed since it was built,
// parsed, or last saved.
func (c *Config) Dirty() bool {
	return c.st.Dirty()
}

// Set upserts key with v. Accepted value kinds are store.Value, string
// (values in [brackets] parse as lists), []string, bool, the integer
// and float kinds, and fmt.Stringer. Unseen section paths of a dotted
// key are registered so the configuration stays serializable. The
// change flag rises only when the stored value actually changes.
func (c *Config) Set(key string, v any) error {
	key = clean(key)
	if key == "" {
		return fmt.Errorf("%w: empty key", store.ErrKey)
	}
	if key == strings.TrimSpace(token.AssignMark) {
		return fmt.Errorf("%w: %q", store.ErrKey, key)
	}
	if v == nil {
		return fmt.Errorf("%w: nil value for %q", store.ErrKey, key)
	}
	val, err := valueFor(v)
	if err != nil {
		return err
	}
	if !val.IsList() && clean(val.Str) == "" {
		return fmt.Errorf("%w: empty value for %q", store.ErrFormat, key)
	}
	c.registerSections(key)
	c.st.Put(key, val)
	return nil
}

// Delete removes key, reporting whether it was present.
func (c *Config) Delete(key string) bool {
	return c.st.Delete(key)
}

// GetOrSet returns the value at key, inserting and returning def when
// the key is absent. The insert registers section paths and counts as
// a change.
func (c *Config) GetOrSet(key string, def store.Value) (store.Value, error) {
	key = clean(key)
	if key == "" {
		return store.Value{}, fmt.Errorf("%w: empty key", store.ErrKey)
	}
	if v, ok := c.st.Get(key); ok {
		return v, nil
	}
	if err := c.Set(key, def); err != nil {
		return store.Value{}, err
	}
	return def, nil
}

// MarshalText renders the configuration as sconf text.
func (c *Config) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := encode.Encode(c.st, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Text renders the configuration as sconf text without the trailing
// break, panicking when a dotted key has no registered section. The
// constructors here always register sections, so that only arises on
// hand-built stores.
func (c *Config) Text() string {
	return encode.MustString(c.st)
}

func (c *Config) registerSections(key string) {
	segs := strings.Split(key, token.KeySep)
	for j := 1; j < len(segs); j++ {
		c.st.Sections().Register(strings.Join(segs[:j], token.KeySep), (j-1)*token.IndentSize)
	}
}

func valueFor(v any) (store.Value, error) {
	switch x := v.(type) {
	case store.Value:
		return x, nil
	case string:
		return store.ParseValue(clean(x)), nil
	case []string:
		return store.List(x...), nil
	case bool:
		return store.Scalar(strconv.FormatBool(x)), nil
	case int:
		return store.Scalar(strconv.Itoa(x)), nil
	case int8:
		return store.Scalar(strconv.FormatInt(int64(x), 10)), nil
	case int16:
		return store.Scalar(strconv.FormatInt(int64(x), 10)), nil
	case int32:
		return store.Scalar(strconv.FormatInt(int64(x), 10)), nil
	case int64:
		return store.Scalar(strconv.FormatInt(x, 10)), nil
	case uint:
		return store.Scalar(strconv.FormatUint(uint64(x), 10)), nil
	case uint8:
		return store.Scalar(strconv.FormatUint(uint64(x), 10)), nil
	case uint16:
		return store.Scalar(strconv.FormatUint(uint64(x), 10)), nil
	case uint32:
		return store.Scalar(strconv.FormatUint(uint64(x), 10)), nil
	case uint64:
		return store.Scalar(strconv.FormatUint(x, 10)), nil
	case float32:
		return store.Scalar(strconv.FormatFloat(float64(x), 'f', -1, 32)), nil
	case float64:
		return store.Scalar(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case fmt.Stringer:
		return store.ParseValue(clean(x.String())), nil
	}
	return store.Value{}, fmt.Errorf("%w: cannot store %T", store.ErrKey, v)
}

var indentUnit = strings.Repeat(" ", token.IndentSize)

// clean normalizes tabs to indent spaces and trims surrounding space,
// the same preparation the scanner applies to lines.
func clean(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\t", indentUnit))
}
