package eval

import (
	"testing"

	. "gopkg.in/check.v1"

	"github.com/rootlisp/rootlisp/sexp"
)

func Test(t *testing.T) { TestingT(t) }

type EnvSuite struct{}

var _ = Suite(&EnvSuite{})

func (s *EnvSuite) TestAssocFindsBinding(c *C) {
	key := sexp.Symbol("key")
	val := sexp.Symbol("value")
	env := sexp.Cons(sexp.Cons(key, val), sexp.Nil)
	c.Assert(Assoc(key, env), Equals, val)
}

func (s *EnvSuite) TestAssocUnboundIsSelfEvaluating(c *C) {
	key := sexp.Symbol("nowhere")
	c.Assert(Assoc(key, sexp.Nil), Equals, key)
}

func (s *EnvSuite) TestAssocInnermostWins(c *C) {
	key := sexp.Symbol("x")
	inner := sexp.Symbol("inner")
	outer := sexp.Symbol("outer")
	env := sexp.Cons(sexp.Cons(key, inner), sexp.Cons(sexp.Cons(key, outer), sexp.Nil))
	c.Assert(Assoc(key, env), Equals, inner)
}

func (s *EnvSuite) TestPairListsEqualLength(c *C) {
	keys := sexp.Cons(sexp.Symbol("a"), sexp.Cons(sexp.Symbol("b"), sexp.Nil))
	vals := sexp.Cons(sexp.Symbol("1"), sexp.Cons(sexp.Symbol("2"), sexp.Nil))
	got := PairLists(keys, vals)
	c.Assert(sexp.PrintList(got), Equals, "((a . 1) (b . 2))")
}

func (s *EnvSuite) TestPairListsBothEmpty(c *C) {
	c.Assert(PairLists(sexp.Nil, sexp.Nil), Equals, sexp.Nil)
}

func (s *EnvSuite) TestPairListsMismatchTruncatesToNil(c *C) {
	keys := sexp.Cons(sexp.Symbol("a"), sexp.Nil)
	vals := sexp.Nil
	c.Assert(PairLists(keys, vals), Equals, sexp.Nil)

	keys2 := sexp.Nil
	vals2 := sexp.Cons(sexp.Symbol("1"), sexp.Nil)
	c.Assert(PairLists(keys2, vals2), Equals, sexp.Nil)
}

func (s *EnvSuite) TestPairListsKeepsCommonPrefix(c *C) {
	keys := sexp.Cons(sexp.Symbol("a"), sexp.Cons(sexp.Symbol("b"), sexp.Nil))
	vals := sexp.Cons(sexp.Symbol("1"), sexp.Nil)
	got := PairLists(keys, vals)
	c.Assert(sexp.PrintList(got), Equals, "((a . 1))")
}

func (s *EnvSuite) TestAppend(c *C) {
	xs := sexp.Cons(sexp.Symbol("a"), sexp.Cons(sexp.Symbol("b"), sexp.Nil))
	ys := sexp.Cons(sexp.Symbol("c"), sexp.Nil)
	c.Assert(sexp.PrintList(Append(xs, ys)), Equals, "(a b c)")
	c.Assert(Append(sexp.Nil, ys), Equals, ys)
	c.Assert(sexp.PrintList(Append(xs, sexp.Nil)), Equals, sexp.PrintList(xs))
}
