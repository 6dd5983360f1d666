package fsa

import "fmt"

// PayloadCreator computes a message payload from the arguments given to an
// ActionCreator.
type PayloadCreator func(args ...any) any

// ActionCreator builds messages of one type. It is immutable and safe to
// share; build one with MakeActionCreator.
//
// An ActionCreator is a TypeRef, so it can be passed anywhere a type string
// is accepted.
type ActionCreator struct {
	typ     string
	payload func(args ...any) any
	meta    func(args ...any) any
}

// MakeActionCreator returns an ActionCreator for typ.
//
// typ is a string or TypeRef. payloadCreator computes the payload from the
// Create arguments; nil means the identity (the first argument). It may be a
// PayloadCreator or any function with at least one parameter and one result,
// for example:
//
//	add, err := fsa.MakeActionCreator("ADD", func(key string, n int) map[string]int {
//	    return map[string]int{key: n}
//	}, nil)
//
// metaCreator is optional. When set it computes Meta from the same arguments
// on every call, including error calls.
func MakeActionCreator(typ any, payloadCreator, metaCreator any) (*ActionCreator, error) {
	t, err := resolveType(typ)
	if err != nil {
		return nil, err
	}

	c := &ActionCreator{typ: t, payload: identity}
	if !isNilFunc(payloadCreator) {
		f, ok := payloadCreatorOf(payloadCreator)
		if !ok {
			return nil, fmt.Errorf("%w for %s: expected a function of at least one argument returning one value, got %T",
				ErrInvalidPayloadCreator, t, payloadCreator)
		}
		c.payload = f
	}
	if !isNilFunc(metaCreator) {
		f, ok := metaCreatorOf(metaCreator)
		if !ok {
			return nil, fmt.Errorf("%w for %s: expected a function returning one value, got %T",
				ErrInvalidMetaCreator, t, metaCreator)
		}
		c.meta = f
	}
	return c, nil
}

// Create builds a message from args.
//
// When the first argument is an error, the payload creator is skipped: the
// error becomes the payload unmodified and Error is set. Meta is always
// computed from the original args.
//
// Create panics when a function payload or meta creator receives an argument
// its parameter cannot take: a value that is neither assignable to the
// parameter type nor a number converted to a numeric parameter. Missing
// arguments are zero values and extra arguments are dropped.
func (c *ActionCreator) Create(args ...any) Message {
	msg := Message{Type: c.typ}

	var first any
	if len(args) > 0 {
		first = args[0]
	}
	if err, ok := first.(error); ok {
		msg.Payload = err
		msg.Error = true
	} else {
		msg.Payload = c.payload(args...)
	}

	if c.meta != nil {
		msg.Meta = c.meta(args...)
	}
	return msg
}

// Type returns the message type this creator builds.
func (c *ActionCreator) Type() string { return c.typ }

// ResolveType implements TypeRef.
func (c *ActionCreator) ResolveType() string { return c.typ }

// String returns the message type, so a creator prints as its type.
func (c *ActionCreator) String() string { return c.typ }

func (*ActionCreator) typeRef() {}
