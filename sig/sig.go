// Package sig implements function-signature algebra: parameter and result
// extraction, async wrapping, currying and composition. Chain-building
// operations (Pipe, Compose) validate their inputs at definition time; the
// extraction operations are total.
package sig

import (
	"strconv"
	"strings"

	typeshape "github.com/ryzmae/typeshape"
)

// Args returns a copy of the parameter list.
func Args(s *typeshape.Signature) []typeshape.Descriptor { return s.Params() }

// Ret returns the declared result descriptor. For an async signature this
// describes the resolved value while the async flag stands in for the
// wrapper; Ret does not look through it implicitly — that is Awaited's job.
func Ret(s *typeshape.Signature) typeshape.Descriptor { return s.Result() }

// Awaited returns the result descriptor with one level of async wrapping
// explicitly removed. For a synchronous signature it is identical to Ret.
func Awaited(s *typeshape.Signature) typeshape.Descriptor { return s.Result() }

// Promisify marks s async, wrapping its result. Already-async signatures
// pass through unchanged; the wrapper does not nest.
func Promisify(s *typeshape.Signature) *typeshape.Signature {
	if s.Async() {
		return s
	}
	return typeshape.NewAsyncSignature(s.Params(), s.Result())
}

// Curry rewrites an n-ary signature into a chain of n unary signatures, each
// returning the next link. The innermost link keeps the original result and
// its async flag. A zero-arity signature is already the collapsed form and
// is returned as-is.
func Curry(s *typeshape.Signature) *typeshape.Signature {
	params := s.Params()
	if len(params) == 0 {
		return s
	}
	var link *typeshape.Signature
	for i := len(params) - 1; i >= 0; i-- {
		if link == nil {
			if s.Async() {
				link = typeshape.NewAsyncSignature(params[i:i+1], s.Result())
			} else {
				link = typeshape.NewSignature(params[i:i+1], s.Result())
			}
			continue
		}
		link = typeshape.NewSignature(params[i:i+1], link)
	}
	return link
}

// Uncurry flattens a curried chain completely: parameters accumulate
// left-to-right until the result is no longer a signature. Flattening stops
// at an async link, whose result is wrapped and therefore not a bare chain
// link. Uncurry(Curry(s)) restores s for every synchronous s.
func Uncurry(s *typeshape.Signature) *typeshape.Signature {
	params := s.Params()
	res := s.Result()
	async := s.Async()
	for !async {
		next, ok := res.(*typeshape.Signature)
		if !ok {
			break
		}
		params = append(params, next.Params()...)
		res = next.Result()
		async = next.Async()
	}
	if async {
		return typeshape.NewAsyncSignature(params, res)
	}
	return typeshape.NewSignature(params, res)
}

// UncurryOne merges only the outermost two links of a curried chain. When
// the result is not itself a signature there is nothing to merge and s is
// returned as-is.
func UncurryOne(s *typeshape.Signature) *typeshape.Signature {
	if s.Async() {
		return s
	}
	next, ok := s.Result().(*typeshape.Signature)
	if !ok {
		return s
	}
	params := append(s.Params(), next.Params()...)
	if next.Async() {
		return typeshape.NewAsyncSignature(params, next.Result())
	}
	return typeshape.NewSignature(params, next.Result())
}

// Pipe chains unary signatures left-to-right: the piped signature takes the
// first link's parameter and returns the last link's result. Definition-time
// errors: an empty chain, a non-unary link, a link whose parameter does not
// subsume the previous result, or an async link anywhere but last (its
// wrapped result cannot feed the next link).
func Pipe(links ...*typeshape.Signature) (*typeshape.Signature, error) {
	if len(links) == 0 {
		return nil, typeshape.Issues{typeshape.Issue{
			Path:    "/",
			Code:    typeshape.CodeInvalidArity,
			Message: "pipe requires at least one signature",
		}}
	}
	var iss typeshape.Issues
	for i, l := range links {
		if l.Arity() != 1 {
			iss = typeshape.AppendIssues(iss, typeshape.Issue{
				Path:    "/" + strconv.Itoa(i),
				Code:    typeshape.CodeInvalidArity,
				Message: "pipe links must be unary",
				Hint:    "arity " + strconv.Itoa(l.Arity()),
			})
		}
		if l.Async() && i != len(links)-1 {
			iss = typeshape.AppendIssues(iss, typeshape.Issue{
				Path:    "/" + strconv.Itoa(i),
				Code:    typeshape.CodeSignatureChain,
				Message: "async link before the end of the chain",
			})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	for i := 1; i < len(links); i++ {
		param := links[i].Params()[0]
		if !typeshape.Subsumes(param, links[i-1].Result()) {
			iss = typeshape.AppendIssues(iss, typeshape.Issue{
				Path:    "/" + strconv.Itoa(i),
				Code:    typeshape.CodeSignatureChain,
				Message: "link parameter does not accept the previous result",
			})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	first, last := links[0], links[len(links)-1]
	if last.Async() {
		return typeshape.NewAsyncSignature(first.Params(), last.Result()), nil
	}
	return typeshape.NewSignature(first.Params(), last.Result()), nil
}

// Compose is the right-to-left mirror of Pipe.
func Compose(links ...*typeshape.Signature) (*typeshape.Signature, error) {
	rev := make([]*typeshape.Signature, len(links))
	for i, l := range links {
		rev[len(links)-1-i] = l
	}
	s, err := Pipe(rev...)
	if err != nil {
		// report positions in the caller's right-to-left order
		if iss, ok := typeshape.AsIssues(err); ok {
			out := make(typeshape.Issues, 0, len(iss))
			for _, it := range iss {
				if n, convErr := strconv.Atoi(strings.TrimPrefix(it.Path, "/")); convErr == nil {
					it.Path = "/" + strconv.Itoa(len(links)-1-n)
				}
				out = append(out, it)
			}
			return nil, out
		}
		return nil, err
	}
	return s, nil
}
