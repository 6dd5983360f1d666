package fsa

import (
	"fmt"
	"maps"
	"slices"
)

// ActionCreators maps identifiers (see CamelCase) to action creators.
type ActionCreators map[string]*ActionCreator

// Factory builds sets of action creators. The zero value is not usable; use
// NewFactory. A Factory is immutable and safe for concurrent use.
type Factory struct {
	identifier func(string) string
}

// SetOption configures a Factory.
type SetOption func(*Factory)

// WithIdentifier sets the function that derives a creator's key in the
// resulting ActionCreators from its type. The default is CamelCase. fn must be
// deterministic.
func WithIdentifier(fn func(string) string) SetOption {
	return func(f *Factory) {
		if fn != nil {
			f.identifier = fn
		}
	}
}

// NewFactory creates a Factory with the given options.
func NewFactory(opts ...SetOption) Factory {
	f := Factory{identifier: CamelCase}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

var defaultFactory = NewFactory()

// FromMap builds one creator per entry of actions, keyed by type. Each value
// is a payload creator accepted by MakeActionCreator, or nil for the identity.
//
// Entries are built in sorted type order, so the first invalid entry reported
// does not depend on map iteration.
func (f Factory) FromMap(actions map[string]any) (ActionCreators, error) {
	out := make(ActionCreators, len(actions))
	for _, typ := range slices.Sorted(maps.Keys(actions)) {
		if err := f.add(out, typ, actions[typ]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FromTypes builds an identity-payload creator for each type.
func (f Factory) FromTypes(types ...string) (ActionCreators, error) {
	out := make(ActionCreators, len(types))
	for _, typ := range types {
		if err := f.add(out, typ, nil); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FromMapAndTypes combines FromMap and FromTypes. A bare type whose
// identifier collides with a map entry replaces it.
func (f Factory) FromMapAndTypes(actions map[string]any, types ...string) (ActionCreators, error) {
	out, err := f.FromMap(actions)
	if err != nil {
		return nil, err
	}
	bare, err := f.FromTypes(types...)
	if err != nil {
		return nil, err
	}
	maps.Copy(out, bare)
	return out, nil
}

// Make dispatches on the shape of its arguments:
//
//	f.Make("A", "B")                       // FromTypes
//	f.Make(map[string]any{"A": fn})        // FromMap
//	f.Make(map[string]any{"A": fn}, "B")   // FromMapAndTypes
//
// Any other shape fails with ErrInvalidBatchShape.
func (f Factory) Make(first any, more ...any) (ActionCreators, error) {
	types := make([]string, 0, len(more))
	for i, m := range more {
		s, ok := m.(string)
		if !ok {
			return nil, fmt.Errorf("%w: argument %d is %T, expected a string action type", ErrInvalidBatchShape, i+1, m)
		}
		types = append(types, s)
	}

	switch v := first.(type) {
	case string:
		return f.FromTypes(append([]string{v}, types...)...)
	case map[string]any:
		if v == nil {
			return nil, fmt.Errorf("%w: action map is nil", ErrInvalidBatchShape)
		}
		return f.FromMapAndTypes(v, types...)
	case map[string]PayloadCreator:
		if v == nil {
			return nil, fmt.Errorf("%w: action map is nil", ErrInvalidBatchShape)
		}
		actions := make(map[string]any, len(v))
		for k, c := range v {
			actions[k] = c
		}
		return f.FromMapAndTypes(actions, types...)
	}
	return nil, fmt.Errorf("%w: expected an optional map followed by string action types, got %T", ErrInvalidBatchShape, first)
}

func (f Factory) add(out ActionCreators, typ string, payloadCreator any) error {
	if !isNilFunc(payloadCreator) && !IsPayloadCreator(payloadCreator) {
		return fmt.Errorf("%w for %s: expected a function or nil, got %T", ErrInvalidPayloadCreator, typ, payloadCreator)
	}
	c, err := MakeActionCreator(typ, payloadCreator, nil)
	if err != nil {
		return err
	}
	out[f.identifier(typ)] = c
	return nil
}

// MakeActionCreators builds several action creators at once with the default
// Factory. See Factory.Make for the accepted argument shapes.
func MakeActionCreators(first any, more ...any) (ActionCreators, error) {
	return defaultFactory.Make(first, more...)
}

// ActionCreatorsFromMap calls FromMap on the default Factory.
func ActionCreatorsFromMap(actions map[string]any) (ActionCreators, error) {
	return defaultFactory.FromMap(actions)
}

// ActionCreatorsFromTypes calls FromTypes on the default Factory.
func ActionCreatorsFromTypes(types ...string) (ActionCreators, error) {
	return defaultFactory.FromTypes(types...)
}

// ActionCreatorsFromMapAndTypes calls FromMapAndTypes on the default Factory.
func ActionCreatorsFromMapAndTypes(actions map[string]any, types ...string) (ActionCreators, error) {
	return defaultFactory.FromMapAndTypes(actions, types...)
}
