package eval

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/sconf-format/go-sconf/debug"
	"github.com/sconf-format/go-sconf/store"
)

// Expand evaluates expressions in every value of st. A scalar holding a
// single .[expr] reference is replaced by the expression result, which
// may be a list. All other scalar text and every list element is
// expanded in place with ExpandString. Entries whose text does not
// change are left untouched, so expansion on an expression-free store
// does not mark it dirty.
func Expand(st *store.Store, env Env) error {
	type repl struct {
		key string
		val store.Value
	}
	var repls []repl
	for key, val := range st.All() {
		if val.IsList() {
			elems := make([]string, len(val.Elems))
			for i, el := range val.Elems {
				x, err := ExpandString(el, env)
				if err != nil {
					return fmt.Errorf("error expanding %q: %w", key, err)
				}
				elems[i] = x
			}
			repls = append(repls, repl{key, store.List(elems...)})
			continue
		}
		if raw := GetRaw(val.Str); raw != "" {
			x, err := evalExpr(raw, env)
			if err != nil {
				return fmt.Errorf("error expanding %q: %w", key, err)
			}
			v, err := valueOf(x)
			if err != nil {
				return fmt.Errorf("error expanding %q: %w", key, err)
			}
			repls = append(repls, repl{key, v})
			continue
		}
		x, err := ExpandString(val.Str, env)
		if err != nil {
			return fmt.Errorf("error expanding %q: %w", key, err)
		}
		repls = append(repls, repl{key, store.Scalar(x)})
	}
	for _, r := range repls {
		st.Put(r.key, r.val)
	}
	if debug.Eval() {
		debug.Logf("expanded store\n%s", debug.Sconf{Store: st})
	}
	return nil
}

// GetRaw extracts the expression from a .[expr] reference value.
// It returns the text without the ".[" prefix and "]" suffix, or an
// empty string when v is not in .[expr] form.
func GetRaw(v string) string {
	if !isRawRef(v) {
		return ""
	}
	return v[2 : len(v)-1]
}

func isRawRef(s string) bool {
	return strings.HasPrefix(s, ".[") && strings.HasSuffix(s, "]")
}

// ExpandString expands $[...] and .[...] expressions in a string.
//
// Expressions are evaluated with expr-lang against the provided
// environment. Within expressions, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// If an expression is not closed with an unescaped ], the text is
// treated as a literal string rather than an expression.
func ExpandString(v string, env Env) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	// $[x] or .[x] with backslash escaping: \] -> ], \\ -> \
	exprStart := -1 // position of $ or . that starts the expression
	i := 0
	n := len(v)
	var outBuf []byte // accumulates the final output
	var keyBuf []byte // accumulates the current expression content (unescaped)

	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$', '.':
			if next == '[' {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 {
				// backslash escapes the next character
				keyBuf = append(keyBuf, next)
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				key := strings.TrimSpace(string(keyBuf))
				x, err := evalExpr(key, env)
				if err != nil {
					return "", err
				}
				text, err := anyToText(x)
				if err != nil {
					return "", fmt.Errorf("could not render evaluation result for %s: %w", key, err)
				}
				outBuf = append(outBuf, text...)
				exprStart = -1
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}

	// Handle end of string
	if exprStart == -1 {
		outBuf = append(outBuf, v[n-1])
		return string(outBuf), nil
	}

	// Still inside expression - no unescaped ] found
	// Check if last char is ] and we didn't escape past the end
	if i >= n || v[n-1] != ']' {
		// Not a valid expression - output literally
		outBuf = append(outBuf, v[exprStart:n]...)
		return string(outBuf), nil
	}

	key := strings.TrimSpace(string(keyBuf))
	x, err := evalExpr(key, env)
	if err != nil {
		return "", err
	}
	text, err := anyToText(x)
	if err != nil {
		return "", fmt.Errorf("could not render evaluation result for %s: %w", key, err)
	}
	outBuf = append(outBuf, text...)
	return string(outBuf), nil
}

func evalExpr(key string, env Env) (any, error) {
	x, err := expr.Eval(key, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", key, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", key, x)
	}
	return x, nil
}

// valueOf converts an evaluation result to a store value, turning
// slices into lists.
func valueOf(v any) (store.Value, error) {
	switch x := v.(type) {
	case []string:
		return store.List(x...), nil
	case []any:
		elems := make([]string, len(x))
		for i := range x {
			s, err := anyToText(x[i])
			if err != nil {
				return store.Value{}, err
			}
			elems[i] = s
		}
		return store.List(elems...), nil
	}
	s, err := anyToText(v)
	if err != nil {
		return store.Value{}, err
	}
	return store.Scalar(s), nil
}

func anyToText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case json.Number:
		return string(x), nil
	case []string:
		return store.List(x...).String(), nil
	case []any:
		val, err := valueOf(x)
		if err != nil {
			return "", err
		}
		return val.String(), nil
	case nil:
		return "", fmt.Errorf("expression produced no value")
	default:
		return "", fmt.Errorf("cannot render %T as configuration text", v)
	}
}
