package eval

import "github.com/rootlisp/rootlisp/sexp"

// Assoc looks key up in env, an association list of (key . value) pairs.
// An unbound atom evaluates to itself — there is no separate "unbound
// variable" error in this language; a free symbol is self-evaluating.
func Assoc(key, env *sexp.Value) *sexp.Value {
	if sexp.IsNull(env) {
		return key
	}
	entry := sexp.First(env)
	if sexp.CBool(sexp.Eq(sexp.First(entry), key)) {
		return sexp.Rest(entry)
	}
	return Assoc(key, sexp.Rest(env))
}

// PairLists builds the association list ((k1 . v1) (k2 . v2) ...) from two
// parallel lists, recursing while both are still pairs. The moment either
// list runs out, the recursion bottoms out to nil — so a length mismatch
// drops only the unmatched tail, keeping whatever common-prefix bindings
// were already built (see DESIGN.md).
func PairLists(keys, values *sexp.Value) *sexp.Value {
	if keys.IsPair() && values.IsPair() {
		entry := sexp.Cons(sexp.First(keys), sexp.First(values))
		return sexp.Cons(entry, PairLists(sexp.Rest(keys), sexp.Rest(values)))
	}
	return sexp.Nil
}

// Append concatenates two lists; b becomes the new tail of a.
func Append(a, b *sexp.Value) *sexp.Value {
	if sexp.IsNull(a) {
		return b
	}
	return sexp.Cons(sexp.First(a), Append(sexp.Rest(a), b))
}
