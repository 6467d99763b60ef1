package store

import (
	"errors"

	"github.com/sconf-format/go-sconf/token"
)

var (
	// ErrFormat wraps malformed text and failed value coercions.
	ErrFormat = token.ErrFormat

	// ErrKey flags API misuse: empty or reserved keys, nil values,
	// key-value argument lists of odd length.
	ErrKey = errors.New("invalid key")

	// ErrNoKey reports typed reads of keys the store does not hold.
	ErrNoKey = errors.New("no such key")
)
