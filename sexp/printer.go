package sexp

import "strings"

// stringWriter is the minimal surface writeDot/writeList need. Both
// strings.Builder and boundedWriter satisfy it.
type stringWriter interface {
	WriteString(s string) (int, error)
	WriteByte(b byte) error
}

// boundedWriter copies into a caller-provided, capacity-limited buffer
// while still counting the full length that would have been written had
// the buffer been big enough. This is the "truncation-reporting" contract
// the distilled spec's printer is required to have: never overrun dst,
// but always report the true length.
type boundedWriter struct {
	dst  []byte
	used int
	want int
}

func newBoundedWriter(dst []byte) *boundedWriter {
	return &boundedWriter{dst: dst}
}

func (w *boundedWriter) WriteString(s string) (int, error) {
	w.want += len(s)
	if w.used < len(w.dst) {
		w.used += copy(w.dst[w.used:], s)
	}
	return len(s), nil
}

func (w *boundedWriter) WriteByte(b byte) error {
	w.want++
	if w.used < len(w.dst) {
		w.dst[w.used] = b
		w.used++
	}
	return nil
}

// PrintDot renders v in dot notation: every pair prints as
// "(first . rest)", recursively, with no shorthand.
func PrintDot(v *Value) string {
	var b strings.Builder
	writeDot(&b, v)
	return b.String()
}

// PrintDotBounded renders v in dot notation into dst, never writing past
// len(dst), and returns the number of bytes the full rendering would have
// occupied.
func PrintDotBounded(v *Value, dst []byte) int {
	w := newBoundedWriter(dst)
	writeDot(w, v)
	return w.want
}

func writeDot(w stringWriter, v *Value) {
	if v.IsAtom() {
		w.WriteString(v.AtomText())
		return
	}
	w.WriteByte('(')
	writeDot(w, v.pair.first)
	w.WriteString(" . ")
	writeDot(w, v.pair.rest)
	w.WriteByte(')')
}

// PrintList renders v in list notation, applying the quote shorthand: a
// pair (quote . (X . nil)) — a proper one-element list headed by quote —
// prints as 'X instead of (quote X). The shorthand never fires on
// anything else, including quote applied to a dotted pair.
func PrintList(v *Value) string {
	var b strings.Builder
	writeList(&b, v)
	return b.String()
}

// PrintListBounded is the bounded-output counterpart of PrintList, with
// the same truncation-reporting contract as PrintDotBounded.
func PrintListBounded(v *Value, dst []byte) int {
	w := newBoundedWriter(dst)
	writeList(w, v)
	return w.want
}

func writeList(w stringWriter, v *Value) {
	if v.IsAtom() {
		w.WriteString(v.AtomText())
		return
	}
	first, rest := v.pair.first, v.pair.rest
	if SameAtom(first, QuoteSym) && rest.IsPair() && IsNull(rest.pair.rest) {
		w.WriteByte('\'')
		writeList(w, rest.pair.first)
		return
	}
	w.WriteByte('(')
	writeList(w, first)
	for cur := rest; ; {
		if IsNull(cur) {
			break
		}
		if cur.IsPair() {
			w.WriteByte(' ')
			writeList(w, cur.pair.first)
			cur = cur.pair.rest
			continue
		}
		// A dotted tail: some non-nil atom in rest position.
		w.WriteString(" . ")
		writeList(w, cur)
		break
	}
	w.WriteByte(')')
}
