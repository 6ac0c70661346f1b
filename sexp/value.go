// Package sexp implements the symbolic-expression value model described in
// the Roots-of-Lisp subset: every value is either an atom (an interned,
// immutable string of bytes) or a pair of two sexps (first and rest, the
// classical car and cdr). It also implements the reader and printer that
// convert between this value model and the language's list/dot surface
// syntax.
package sexp

import "fmt"

// Value is a symbolic expression: either an atom or a pair, never both,
// never neither. The zero Value is not meaningful; construct values with
// Symbol or Cons.
type Value struct {
	atom *atomData
	pair *pairData
}

type atomData struct {
	text string
}

type pairData struct {
	first, rest *Value
}

// IsAtom reports whether v is an atom.
func (v *Value) IsAtom() bool { return v.atom != nil }

// IsPair reports whether v is a pair.
func (v *Value) IsPair() bool { return v.pair != nil }

// AtomText returns the atom's underlying bytes. It panics if v is not an
// atom; callers that aren't sure should check IsAtom first.
func (v *Value) AtomText() string {
	if v.atom == nil {
		panic(&InvariantError{Op: "AtomText", Detail: "called on a pair"})
	}
	return v.atom.text
}

// InvariantError signals a violation of the value model's own contract
// (a non-pair handed to First/Rest, an invalid atom spelling handed to
// Symbol). These never arise from ordinary reader or evaluator operation;
// they indicate a bug in the calling Go code, not a malformed Lisp program.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sexp: invariant violation in %s: %s", e.Op, e.Detail)
}

var internTable = map[string]*Value{}

// Symbol returns the interned atom for text, constructing it on first use.
// It panics if text is empty or contains whitespace, a quote, a
// parenthesis, or a NUL byte — the reader enforces these constraints
// before ever calling Symbol, so a panic here means a caller built an atom
// by hand without validating it.
func Symbol(text string) *Value {
	if v, ok := internTable[text]; ok {
		return v
	}
	if text == "" {
		panic(&InvariantError{Op: "Symbol", Detail: "empty atom text"})
	}
	for i := 0; i < len(text); i++ {
		if isReservedByte(text[i]) {
			panic(&InvariantError{Op: "Symbol", Detail: fmt.Sprintf("reserved byte %q in atom %q", text[i], text)})
		}
	}
	v := &Value{atom: &atomData{text: text}}
	internTable[text] = v
	return v
}

func isReservedByte(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\'', '(', ')', 0:
		return true
	}
	return false
}

// Cons constructs a fresh pair with first a and rest b.
func Cons(a, b *Value) *Value {
	return &Value{pair: &pairData{first: a, rest: b}}
}

// First returns a pair's first component (the classical car). It panics if
// p is not a pair: the distilled spec treats this as undefined behavior in
// the reference and asks re-implementations to treat it as a fatal
// invariant violation rather than silently returning something. Code that
// evaluates user-supplied operands (the eval package's car/cdr special
// forms) must check IsPair itself and surface a structured fault instead
// of calling First/Rest directly.
func First(p *Value) *Value {
	if p.pair == nil {
		panic(&InvariantError{Op: "First", Detail: "operand is an atom, not a pair"})
	}
	return p.pair.first
}

// Rest returns a pair's rest component (the classical cdr). See First for
// the panic contract.
func Rest(p *Value) *Value {
	if p.pair == nil {
		panic(&InvariantError{Op: "Rest", Detail: "operand is an atom, not a pair"})
	}
	return p.pair.rest
}

// SameAtom reports whether a and b are both atoms with identical text.
// Since atoms are interned, this is a pointer comparison.
func SameAtom(a, b *Value) bool {
	return a.atom != nil && b.atom != nil && a.atom == b.atom
}

// IsNull is shorthand for eq(x, nil), expressed as a native bool for
// internal control flow.
func IsNull(x *Value) bool {
	return SameAtom(x, Nil)
}

// CBool bridges a sexp truth value to a host bool: true iff x is the atom
// t. Any other value, including nil, is false.
func CBool(x *Value) bool {
	return SameAtom(x, T)
}

func boolValue(ok bool) *Value {
	if ok {
		return T
	}
	return Nil
}

// IsAtom is the primitive `atom`: it returns the atom t if x is an atom,
// else nil.
func IsAtom(x *Value) *Value {
	return boolValue(x.IsAtom())
}

// Eq is the primitive `eq`: t iff both a and b are atoms with equal text.
// Two pairs are never eq, even if structurally identical.
func Eq(a, b *Value) *Value {
	return boolValue(SameAtom(a, b))
}

// Equal structurally compares two sexps: atoms by Eq, pairs by recursive
// equality of both components, and a mixed atom/pair comparison is always
// nil. It is a test/utility operation, not a primitive exposed to
// evaluated programs.
func Equal(a, b *Value) *Value {
	return boolValue(rawEqual(a, b))
}

func rawEqual(a, b *Value) bool {
	if a.IsAtom() != b.IsAtom() {
		return false
	}
	if a.IsAtom() {
		return SameAtom(a, b)
	}
	return rawEqual(a.pair.first, b.pair.first) && rawEqual(a.pair.rest, b.pair.rest)
}

// Well-known atoms, interned at package init and shared by every value that
// spells them. DotSym is transient: well-formed input never yields it; the
// reader returns it as a value only for a stray dot outside an (A . B)
// form, and the evaluator and printer then treat it like any other atom.
// It is exported so tests can probe the value path through it.
var (
	T         = Symbol("t")
	Nil       = Symbol("nil")
	QuoteSym  = Symbol("quote")
	DotSym    = Symbol(".")
	AtomSym   = Symbol("atom")
	EqSym     = Symbol("eq")
	CarSym    = Symbol("car")
	CdrSym    = Symbol("cdr")
	ConsSym   = Symbol("cons")
	CondSym   = Symbol("cond")
	LambdaSym = Symbol("lambda")
	LabelSym  = Symbol("label")
)
