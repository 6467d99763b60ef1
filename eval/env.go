package eval

import (
	"os"
	"strings"

	"github.com/sconf-format/go-sconf/store"
	"github.com/sconf-format/go-sconf/token"
)

// Env is the evaluation environment for expressions.
type Env map[string]any

// OSEnv returns an environment holding the process environment
// variables.
func OSEnv() Env {
	env := Env{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}

// StoreEnv returns an environment exposing the entries of st as nested
// maps, so the entry srv.host is reachable as srv.host in expressions.
// Scalars appear as strings, lists as []string. An entry whose key is
// also a section prefix of another entry is shadowed by the section.
func StoreEnv(st *store.Store) Env {
	env := Env{}
	for key, val := range st.All() {
		segs := strings.Split(key, token.KeySep)
		m := map[string]any(env)
		for _, seg := range segs[:len(segs)-1] {
			sub, ok := m[seg].(map[string]any)
			if !ok {
				sub = map[string]any{}
				m[seg] = sub
			}
			m = sub
		}
		leaf := segs[len(segs)-1]
		if val.IsList() {
			m[leaf] = append([]string(nil), val.Elems...)
			continue
		}
		m[leaf] = val.Str
	}
	return env
}

// Merge overlays envs left to right into a new environment.
func Merge(envs ...Env) Env {
	out := Env{}
	for _, e := range envs {
		for k, v := range e {
			out[k] = v
		}
	}
	return out
}
