package nonempty

import (
	"io"
	"iter"
	"slices"
	"unicode/utf8"
)

// Every method in this file can only add bytes or leave the length as it is.
// Operations that could remove content (truncate, reset, set length, mutable
// range access) are intentionally absent.
//
// Bytes below Len are never rewritten in place: appends call prepare first
// and everything else moves to a new buffer. Copies sharing a prefix of the
// buffer therefore keep their contents.

// Write appends p. It implements io.Writer and always returns len(p), nil.
func (s *String) Write(p []byte) (int, error) {
	s.prepare()
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// WriteString appends str. It implements io.StringWriter.
func (s *String) WriteString(str string) (int, error) {
	s.prepare()
	s.buf = append(s.buf, str...)
	return len(str), nil
}

// WriteByte appends c. It implements io.ByteWriter.
func (s *String) WriteByte(c byte) error {
	s.prepare()
	s.buf = append(s.buf, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r and returns the number of bytes
// written.
func (s *String) WriteRune(r rune) (int, error) {
	s.prepare()
	n := len(s.buf)
	s.buf = utf8.AppendRune(s.buf, r)
	return len(s.buf) - n, nil
}

// Push appends r.
func (s *String) Push(r rune) {
	s.prepare()
	s.buf = utf8.AppendRune(s.buf, r)
}

// PushString appends str in place.
func (s *String) PushString(str string) {
	s.prepare()
	s.buf = append(s.buf, str...)
}

// Insert inserts r at byte index i. It panics if i is out of range or does
// not fall on a character boundary.
func (s *String) Insert(i int, r rune) {
	s.checkBoundary("Insert", i)
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	s.insertAt(i, tmp[:n])
}

// InsertString inserts str at byte index i. It panics if i is out of range
// or does not fall on a character boundary.
func (s *String) InsertString(i int, str string) {
	s.checkBoundary("InsertString", i)
	if str == "" {
		return
	}
	s.insertAt(i, []byte(str))
}

// Grow makes room for at least n more bytes without another allocation,
// growing the buffer geometrically. It panics if n is negative.
func (s *String) Grow(n int) {
	if n < 0 {
		panic("nonempty.String.Grow: negative count")
	}
	s.buf = slices.Grow(s.buf, n)
}

// GrowExact makes room for exactly n more bytes when the spare capacity is
// smaller than n. It panics if n is negative.
func (s *String) GrowExact(n int) {
	if n < 0 {
		panic("nonempty.String.GrowExact: negative count")
	}
	if cap(s.buf)-len(s.buf) >= n {
		return
	}
	s.realloc(len(s.buf) + n)
}

// ShrinkToFit drops any spare capacity.
func (s *String) ShrinkToFit() {
	if cap(s.buf) > len(s.buf) {
		s.realloc(len(s.buf))
	}
}

// ShrinkTo lowers the capacity to max(Len, minCap). It never grows the buffer.
func (s *String) ShrinkTo(minCap int) {
	target := max(len(s.buf), minCap)
	if cap(s.buf) > target {
		s.realloc(target)
	}
}

// ExtendRunes appends every rune yielded by seq, in order.
func (s *String) ExtendRunes(seq iter.Seq[rune]) {
	s.prepare()
	for r := range seq {
		s.buf = utf8.AppendRune(s.buf, r)
	}
}

// ExtendStrings appends every string yielded by seq, in order.
func (s *String) ExtendStrings(seq iter.Seq[string]) {
	s.prepare()
	for str := range seq {
		s.buf = append(s.buf, str...)
	}
}

// ExtendBytes appends every byte slice yielded by seq, in order.
func (s *String) ExtendBytes(seq iter.Seq[[]byte]) {
	s.prepare()
	for p := range seq {
		s.buf = append(s.buf, p...)
	}
}

// Extend appends the contents of each of vs, in order.
func (s *String) Extend(vs ...String) {
	s.prepare()
	for _, v := range vs {
		s.buf = append(s.buf, v.buf...)
	}
}

// Concat returns a new String holding s followed by t. s is left untouched.
func (s String) Concat(t string) String {
	buf := make([]byte, 0, len(s.buf)+len(t))
	buf = append(buf, s.buf...)
	buf = append(buf, t...)
	return String{buf: buf}
}

// Slice returns the bytes in [low, high) as a string. The result may be
// empty; s itself is never modified. It panics if the range is out of bounds
// or either end does not fall on a character boundary.
func (s String) Slice(low, high int) string {
	if low > high {
		panic("nonempty.String.Slice: low index greater than high index")
	}
	s.checkBoundary("Slice", low)
	s.checkBoundary("Slice", high)
	return string(s.buf[low:high])
}

// WriteTo writes the contents to w. It implements io.WriterTo.
func (s String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.buf)
	return int64(n), err
}

func (s *String) realloc(capacity int) {
	buf := make([]byte, len(s.buf), capacity)
	copy(buf, s.buf)
	s.buf = buf
	s.addr = s
}

// insertAt always writes into a new buffer so that copies sharing the old
// one never observe the shifted bytes.
func (s *String) insertAt(i int, p []byte) {
	n := len(s.buf) + len(p)
	buf := make([]byte, n, max(cap(s.buf), n))
	copy(buf, s.buf[:i])
	copy(buf[i:], p)
	copy(buf[i+len(p):], s.buf[i:])
	s.buf = buf
	s.addr = s
}

func (s *String) checkBoundary(op string, i int) {
	if i < 0 || i > len(s.buf) {
		panic("nonempty.String." + op + ": index out of range")
	}
	if i < len(s.buf) && !utf8.RuneStart(s.buf[i]) {
		panic("nonempty.String." + op + ": index is not on a character boundary")
	}
}
