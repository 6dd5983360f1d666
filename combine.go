package fsa

import (
	"fmt"
	"strings"
)

// Delimiter separates the constituent types of a CombinedType. It is not
// expected to occur in ordinary type tags.
const Delimiter = "|fsa-type-delimiter|"

// CombinedType is several action types that a reducer treats as one. It is
// only meaningful as the type argument of MakeActionReducer and
// MakeActionReducers; it is never the type of a dispatched message.
type CombinedType struct {
	joined string
}

// CombineActions combines any number of action types and action creators so
// that a single reducer responds to all of them.
//
// Each argument must be a string or a TypeRef. At least one is required.
//
//	inc, dec := creators["increment"], creators["decrement"]
//	both, err := fsa.CombineActions(inc, dec, "RESET")
func CombineActions(types ...any) (CombinedType, error) {
	if len(types) == 0 {
		return CombinedType{}, fmt.Errorf("%w: expected at least one action type", ErrInvalidBatchShape)
	}
	parts := make([]string, 0, len(types))
	for i, typ := range types {
		s, err := resolveType(typ)
		if err != nil {
			return CombinedType{}, fmt.Errorf("combine argument %d: %w", i, err)
		}
		parts = append(parts, s)
	}
	return CombinedType{joined: strings.Join(parts, Delimiter)}, nil
}

// ResolveType implements TypeRef.
func (c CombinedType) ResolveType() string { return c.joined }

// String returns the delimiter-joined constituent types.
func (c CombinedType) String() string { return c.joined }

// Types returns the constituent types in the order they were combined.
func (c CombinedType) Types() []string { return splitTypes(c.joined) }

func (CombinedType) typeRef() {}

// splitTypes breaks a resolved type string back into its constituents.
func splitTypes(s string) []string {
	return strings.Split(s, Delimiter)
}
