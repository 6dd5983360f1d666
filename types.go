package fsa

import "fmt"

// TypeRef is anything that stands for one or more action types: a PlainType,
// an *ActionCreator, or a CombinedType.
//
// Every function in this package that takes a type argument accepts either a
// string or a TypeRef.
type TypeRef interface {
	// ResolveType returns the action type string this reference stands for.
	ResolveType() string

	typeRef()
}

// PlainType is a bare action type string.
type PlainType string

// ResolveType implements TypeRef.
func (t PlainType) ResolveType() string { return string(t) }

// String returns the type string.
func (t PlainType) String() string { return string(t) }

func (PlainType) typeRef() {}

// resolveType turns a type argument into its string form.
func resolveType(typ any) (string, error) {
	var s string
	switch t := typ.(type) {
	case nil:
		return "", fmt.Errorf("%w: type is required", ErrInvalidType)
	case string:
		s = t
	case TypeRef:
		if isNilRef(t) {
			return "", fmt.Errorf("%w: type is required", ErrInvalidType)
		}
		s = t.ResolveType()
	default:
		return "", fmt.Errorf("%w: expected string or TypeRef, got %T", ErrInvalidType, typ)
	}
	if s == "" {
		return "", fmt.Errorf("%w: type is empty", ErrInvalidType)
	}
	return s, nil
}

func isNilRef(t TypeRef) bool {
	c, ok := t.(*ActionCreator)
	return ok && c == nil
}
