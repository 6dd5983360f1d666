package fsa

import (
	"fmt"
	"maps"
	"slices"
)

// Handler binds a type (string or TypeRef) to a reducer argument accepted by
// MakeActionReducer.
type Handler struct {
	Type    any
	Reducer any
}

// Handlers is an ordered list of handlers. MakeActionReducers folds a message
// through them in slice order.
type Handlers []Handler

// HandlersFromMap converts a map of type to reducer into Handlers, sorted by
// type so the fold order is deterministic.
func HandlersFromMap(m map[string]any) Handlers {
	hs := make(Handlers, 0, len(m))
	for _, typ := range slices.Sorted(maps.Keys(m)) {
		hs = append(hs, Handler{Type: typ, Reducer: m[typ]})
	}
	return hs
}

// MakeActionReducers builds one type-scoped reducer per handler and returns a
// reducer that threads state through all of them in order.
//
//	reducer, err := fsa.MakeActionReducers(fsa.Handlers{
//	    {Type: increment, Reducer: add},
//	    {Type: "DECREMENT", Reducer: subtract},
//	}, Counter{Count: 0})
//
// An unset (nil) state starts from defaultState. When no
// handler matches, the result is the input state.
func MakeActionReducers[S any](handlers Handlers, defaultState S) (Reducer[S], error) {
	reducers := make([]Reducer[S], 0, len(handlers))
	for i, h := range handlers {
		var zero S
		r, err := MakeActionReducer(h.Type, h.Reducer, zero)
		if err != nil {
			return nil, fmt.Errorf("handler %d: %w", i, err)
		}
		reducers = append(reducers, r)
	}

	reduce := ReduceReducers(reducers...)
	return func(state S, msg Message) S {
		return reduce(withDefault(state, defaultState), msg)
	}, nil
}

// ReduceReducers returns a reducer that applies each reducer in turn, feeding
// the state returned by one into the next. Nil reducers are skipped; with
// none left it is the identity.
func ReduceReducers[S any](reducers ...Reducer[S]) Reducer[S] {
	reducers = slices.Clone(reducers)
	return func(state S, msg Message) S {
		for _, r := range reducers {
			state = apply(r, state, msg)
		}
		return state
	}
}
