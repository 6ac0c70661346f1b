// Package eval implements the Roots-of-Lisp evaluator: seven special
// forms (quote, atom, eq, car, cdr, cons, cond) plus lambda and label
// application over an association-list environment.
package eval

import (
	"fmt"

	"github.com/rootlisp/rootlisp/sexp"
)

// Fault is the structured error raised, via panic, when Evaluator.Strict
// is true and evaluation hits a condition the distilled spec leaves
// undefined in the reference (a car/cdr/cons/eq/atom operand of the wrong
// shape). It is recovered at the REPL boundary and never escapes Eval in
// compatibility mode (Strict == false), where these same conditions
// silently produce sexp.Nil instead.
type Fault struct {
	Kind   string
	Detail string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("eval: %s: %s", f.Kind, f.Detail)
}

// Evaluator holds the (currently stateless, beyond its mode flag)
// configuration for one evaluation. Unlike the value model's environment,
// which is itself a sexp value threaded explicitly through Eval, Strict is
// host-side configuration: it does not affect the language's observable
// results, only whether malformed input panics a *Fault or degrades
// silently.
type Evaluator struct {
	// Strict enables diagnostic-fault mode: malformed primitive operands
	// panic a *Fault instead of returning sexp.Nil. Default false
	// (compatibility mode) matches the reference interpreter.
	Strict bool
}

// New returns an Evaluator in compatibility mode.
func New() *Evaluator {
	return &Evaluator{}
}

func (ev *Evaluator) fault(kind, detail string) *sexp.Value {
	if ev.Strict {
		panic(&Fault{Kind: kind, Detail: detail})
	}
	return sexp.Nil
}

// Eval reduces expr to a value under env, an association list of
// (key . value) bindings. See the package doc and SPEC_FULL.md §4.4 for
// the full dispatch table this implements.
func (ev *Evaluator) Eval(expr, env *sexp.Value) *sexp.Value {
	if expr.IsAtom() {
		return Assoc(expr, env)
	}

	op := sexp.First(expr)
	args := sexp.Rest(expr)

	if op.IsAtom() {
		switch {
		case sexp.SameAtom(op, sexp.QuoteSym):
			return ev.operand1(args)
		case sexp.SameAtom(op, sexp.AtomSym):
			return sexp.IsAtom(ev.Eval(ev.operand1(args), env))
		case sexp.SameAtom(op, sexp.EqSym):
			a := ev.Eval(ev.operand1(args), env)
			b := ev.Eval(ev.operand2(args), env)
			return sexp.Eq(a, b)
		case sexp.SameAtom(op, sexp.CarSym):
			return ev.carOf(ev.Eval(ev.operand1(args), env))
		case sexp.SameAtom(op, sexp.CdrSym):
			return ev.cdrOf(ev.Eval(ev.operand1(args), env))
		case sexp.SameAtom(op, sexp.ConsSym):
			a := ev.Eval(ev.operand1(args), env)
			b := ev.Eval(ev.operand2(args), env)
			return sexp.Cons(a, b)
		case sexp.SameAtom(op, sexp.CondSym):
			return ev.evcond(args, env)
		default:
			// op is any other atom: replace it with its binding and
			// re-evaluate the whole form. This is how a function stored
			// in the environment under a name gets invoked by that name.
			return ev.Eval(sexp.Cons(Assoc(op, env), args), env)
		}
	}

	// op is itself a pair: the only two shapes the language defines are
	// (lambda params body) and (label name body) in operator position.
	head := sexp.First(op)
	if head.IsAtom() && sexp.SameAtom(head, sexp.LabelSym) {
		name := ev.operand1(sexp.Rest(op))
		body := ev.operand2(sexp.Rest(op))
		frame := sexp.Cons(sexp.Cons(name, body), env)
		return ev.Eval(sexp.Cons(body, args), frame)
	}
	if head.IsAtom() && sexp.SameAtom(head, sexp.LambdaSym) {
		params := ev.operand1(sexp.Rest(op))
		bodyExpr := ev.operand2(sexp.Rest(op))
		values := ev.evlis(args, env)
		bindings := PairLists(params, values)
		return ev.Eval(bodyExpr, Append(bindings, env))
	}
	return sexp.Nil
}

// evcond evaluates a cond's clauses in order, returning the consequent of
// the first clause whose predicate evaluates to t. If no clause matches,
// the distilled spec deliberately extends the original (undefined) case
// to return nil.
func (ev *Evaluator) evcond(clauses, env *sexp.Value) *sexp.Value {
	if sexp.IsNull(clauses) {
		return sexp.Nil
	}
	if !clauses.IsPair() {
		return ev.fault("malformed-cond", "cond operand is not a list of clauses")
	}
	clause := sexp.First(clauses)
	pred := ev.operand1(clause)
	if sexp.CBool(ev.Eval(pred, env)) {
		return ev.Eval(ev.operand2(clause), env)
	}
	return ev.evcond(sexp.Rest(clauses), env)
}

// evlis evaluates each element of args, left to right, under env.
func (ev *Evaluator) evlis(args, env *sexp.Value) *sexp.Value {
	if sexp.IsNull(args) {
		return sexp.Nil
	}
	if !args.IsPair() {
		return ev.fault("arity-mismatch", "argument list is not a proper list")
	}
	return sexp.Cons(ev.Eval(sexp.First(args), env), ev.evlis(sexp.Rest(args), env))
}

// operand1/operand2 project the first and second elements of an operand
// list without risking a panic through sexp.First/Rest on malformed
// input: a special form invoked with too few operands degrades to nil in
// compatibility mode, or a *Fault in strict mode.
func (ev *Evaluator) operand1(args *sexp.Value) *sexp.Value {
	if !args.IsPair() {
		ev.fault("arity-mismatch", "expected at least one operand")
		return sexp.Nil
	}
	return sexp.First(args)
}

func (ev *Evaluator) operand2(args *sexp.Value) *sexp.Value {
	if !args.IsPair() {
		ev.fault("arity-mismatch", "expected at least two operands")
		return sexp.Nil
	}
	rest := sexp.Rest(args)
	if !rest.IsPair() {
		ev.fault("arity-mismatch", "expected at least two operands")
		return sexp.Nil
	}
	return sexp.First(rest)
}

// carOf and cdrOf implement the car/cdr special forms' type-mismatch
// policy: the value model's First/Rest panic on a non-pair (a fatal
// invariant violation), but a user program handing car/cdr an atom is a
// recoverable, expected-to-happen condition, not a bug in this code. So
// these check IsPair themselves before ever calling into sexp.First/Rest.
func (ev *Evaluator) carOf(v *sexp.Value) *sexp.Value {
	if !v.IsPair() {
		return ev.fault("type-mismatch", "car of an atom")
	}
	return sexp.First(v)
}

func (ev *Evaluator) cdrOf(v *sexp.Value) *sexp.Value {
	if !v.IsPair() {
		return ev.fault("type-mismatch", "cdr of an atom")
	}
	return sexp.Rest(v)
}
