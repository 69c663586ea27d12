package nonempty

import (
	"bytes"
	"log/slog"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether s and t hold the same bytes.
func (s String) Equal(t String) bool { return bytes.Equal(s.buf, t.buf) }

// EqualString reports whether s holds exactly str.
func (s String) EqualString(str string) bool { return string(s.buf) == str }

// Compare orders s and t the way strings.Compare orders their contents.
func (s String) Compare(t String) int { return bytes.Compare(s.buf, t.buf) }

// Compare is String.Compare as a function, for slices.SortFunc and friends.
func Compare(a, b String) int { return a.Compare(b) }

// Hash returns the 64-bit xxHash of the contents. Equal values always hash
// equal. String itself is not comparable; use String() as a map key.
func (s String) Hash() uint64 { return xxhash.Sum64(s.buf) }

// LogValue implements slog.LogValuer.
func (s String) LogValue() slog.Value { return slog.StringValue(string(s.buf)) }
