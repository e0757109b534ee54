package typeshape

import "github.com/google/uuid"

// Tagged wraps a base descriptor with an opaque token so that structurally
// identical bases stop being interchangeable. The token is deliberately not
// inspectable: Brand and the wire decoder are the only producers, and
// equality is the only consumer.
type Tagged struct {
	base  Descriptor
	token string
}

func (t *Tagged) Kind() Kind { return KindTagged }

// Brand attaches token to base. Two Tagged descriptors are compatible only
// when both base and token match exactly; the untagged base never coerces
// into the branded form.
func Brand(base Descriptor, token string) *Tagged {
	return &Tagged{base: base, token: token}
}

// Base returns the underlying descriptor.
func (t *Tagged) Base() Descriptor { return t.base }

// sameToken keeps token comparison inside the package.
func (t *Tagged) sameToken(o *Tagged) bool { return t.token == o.token }

// FreshToken returns a globally unique token for anonymous brands, for
// callers that need a nominal type without inventing a name for it.
func FreshToken() string { return uuid.NewString() }
