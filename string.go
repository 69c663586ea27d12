package nonempty

import (
	"slices"
	"strconv"
	"unicode/utf8"
)

// String is an owned, growable text buffer that always holds at least one
// byte. It can only be built through New, FromString, Parse, FromRune or
// NewUnchecked, and it exposes no operation that can shrink its contents.
//
// Copies of a String may share a buffer until one of them is mutated. The
// first mutation through a given variable moves its contents into a buffer
// private to that variable, so mutating one copy never shows through another.
// Compare Strings with Equal, not ==.
//
// The zero String holds nothing. It is what IntoBytes leaves behind and is
// never returned by a constructor; encoders and ValidateValue reject it with
// ErrZero.
type String struct {
	addr *String // the variable that owns buf; nil until first mutated
	buf  []byte
}

// New takes ownership of buf and returns it as a String. If buf is empty the
// returned error is a *RejectedError carrying buf back unchanged.
func New(buf []byte) (String, error) {
	if len(buf) == 0 {
		return String{}, &RejectedError{Input: buf}
	}
	return String{buf: buf}, nil
}

// FromString copies s into a new String. If s is empty the returned error is
// a *RejectedError whose Text is s.
func FromString(s string) (String, error) {
	if len(s) == 0 {
		return String{}, &RejectedError{Input: []byte(s)}
	}
	return String{buf: []byte(s)}, nil
}

// Parse is FromString under the name used by the strconv family.
func Parse(s string) (String, error) { return FromString(s) }

// FromRune returns a String holding exactly r.
func FromRune(r rune) String {
	return String{buf: utf8.AppendRune(nil, r)}
}

// NewUnchecked wraps buf without checking it.
//
// The caller must guarantee len(buf) >= 1, for example because buf was built
// from a constant literal. Passing an empty buf is a programming error: the
// resulting value breaks every guarantee this package makes and the behavior
// of all other methods on it is unspecified.
func NewUnchecked(buf []byte) String { return String{buf: buf} }

// String returns the contents. It never fails.
func (s String) String() string { return string(s.buf) }

// GoString renders s for the %#v verb.
func (s String) GoString() string { return "nonempty.String(" + strconv.Quote(string(s.buf)) + ")" }

// Bytes returns the contents without copying. The slice aliases the buffer,
// which copies of s may share, so it must not be modified. It is only valid
// until the next mutation.
func (s String) Bytes() []byte { return s.buf }

// Len returns the length in bytes.
func (s String) Len() int { return len(s.buf) }

// Cap returns the capacity of the buffer in bytes.
func (s String) Cap() int { return cap(s.buf) }

// RuneCount returns the number of UTF-8 encoded runes.
func (s String) RuneCount() int { return utf8.RuneCount(s.buf) }

// IsZero reports whether s is the zero String.
func (s String) IsZero() bool { return len(s.buf) == 0 }

// Clone returns a String with its own copy of the buffer.
func (s String) Clone() String { return String{buf: slices.Clone(s.buf)} }

// IntoBytes returns the contents in a slice the caller owns and leaves s as
// the zero String. The returned slice carries no invariant.
func (s *String) IntoBytes() []byte {
	b := slices.Clone(s.buf)
	*s = String{}
	return b
}

// prepare makes s the sole owner of its buffer before bytes are appended in
// place. A String reached through a new address (a copy, or a value fresh
// from a constructor) clones its buffer first, keeping its capacity.
func (s *String) prepare() {
	if s.addr == s {
		return
	}
	if s.buf != nil {
		buf := make([]byte, len(s.buf), cap(s.buf))
		copy(buf, s.buf)
		s.buf = buf
	}
	s.addr = s
}
