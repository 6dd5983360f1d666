package fsa

import (
	"fmt"
	"reflect"
)

// Reducer folds a message into state and returns the next state. Reducers
// built by this package are pure and safe for concurrent use.
type Reducer[S any] func(state S, msg Message) S

// ReducerPair handles success and error messages separately. Next handles
// messages without the error flag, Throw handles those with it. A nil field
// is the identity.
type ReducerPair[S any] struct {
	Next  Reducer[S]
	Throw Reducer[S]
}

// MakeActionReducer returns a reducer that only reacts to messages of typ.
//
// typ is a string or TypeRef; a CombinedType matches any of its constituent
// types. reducer is anything IsReducerPair accepts: nil (the identity), a
// reducer function used for both paths, or a next/throw pair.
//
// When called with an unset state (a nil pointer, map, slice, interface,
// channel or func), the reducer starts from defaultState. Zero structs and
// scalars are real states and are never replaced. Messages of other types
// return the state unchanged.
//
//	reducer, err := fsa.MakeActionReducer(increment, func(s Counter, m fsa.Message) Counter {
//	    n, _ := fsa.PayloadAs[int](m)
//	    return Counter{Count: s.Count + n}
//	}, Counter{})
func MakeActionReducer[S any](typ any, reducer any, defaultState S) (Reducer[S], error) {
	t, err := resolveType(typ)
	if err != nil {
		return nil, err
	}
	next, throw, ok := reducerPairOf[S](reducer)
	if !ok {
		return nil, fmt.Errorf("%w for %s: use a reducer function, nil, or a next/throw pair, got %T",
			ErrInvalidReducer, t, reducer)
	}

	types := splitTypes(t)
	matches := func(msgType string) bool {
		for _, candidate := range types {
			if candidate == msgType {
				return true
			}
		}
		return false
	}

	return func(state S, msg Message) S {
		state = withDefault(state, defaultState)
		if !matches(msg.Type) {
			return state
		}
		if msg.Error {
			return apply(throw, state, msg)
		}
		return apply(next, state, msg)
	}, nil
}

func apply[S any](r Reducer[S], state S, msg Message) S {
	if r == nil {
		return state
	}
	return r(state, msg)
}

// withDefault returns def when state is unset.
func withDefault[S any](state, def S) S {
	if isUnset(state) {
		return def
	}
	return state
}

// isUnset reports whether state is a nil value of a nil-able kind.
func isUnset[S any](state S) bool {
	v := reflect.ValueOf(&state).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
