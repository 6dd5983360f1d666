package fsa

import (
	"fmt"
	"reflect"
)

// IsPayloadCreator reports whether x can compute a payload: a function that
// declares at least one parameter and returns exactly one value.
func IsPayloadCreator(x any) bool {
	_, ok := payloadCreatorOf(x)
	return ok
}

// IsMetaCreator reports whether x can compute metadata: any function that
// returns exactly one value. Unlike payload creators, zero parameters are
// allowed.
func IsMetaCreator(x any) bool {
	_, ok := metaCreatorOf(x)
	return ok
}

// IsReducer reports whether x is usable as a reducer for state S: nil (the
// identity), a Reducer[S], a func(S, Message) S, or a func(S) S.
func IsReducer[S any](x any) bool {
	_, ok := reducerOf[S](x)
	return ok
}

// IsReducerPair reports whether x is usable as a reducer argument: anything
// IsReducer accepts, a ReducerPair[S] (value or pointer), or a map holding
// only "next" and "throw" keys whose values each satisfy IsReducer.
func IsReducerPair[S any](x any) bool {
	_, _, ok := reducerPairOf[S](x)
	return ok
}

func identity(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

func payloadCreatorOf(x any) (func(args ...any) any, bool) {
	return creatorOf(x, 1)
}

func metaCreatorOf(x any) (func(args ...any) any, bool) {
	return creatorOf(x, 0)
}

// creatorOf adapts x into a variadic creator. Common signatures are called
// directly; any other function is called through reflection.
func creatorOf(x any, minArgs int) (func(args ...any) any, bool) {
	switch f := x.(type) {
	case nil:
		return nil, false
	case PayloadCreator:
		return f, f != nil
	case func(...any) any:
		return f, f != nil
	case func(any) any:
		if f == nil {
			return nil, false
		}
		return func(args ...any) any { return f(identity(args...)) }, true
	}

	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, false
	}
	t := v.Type()
	if t.NumIn() < minArgs || t.NumOut() != 1 {
		return nil, false
	}
	return func(args ...any) any {
		return v.Call(callArgs(t, args))[0].Interface()
	}, true
}

// callArgs fits args to the parameters of t. Missing arguments become zero
// values and surplus arguments are dropped unless t is variadic.
func callArgs(t reflect.Type, args []any) []reflect.Value {
	n := t.NumIn()
	fixed := n
	if t.IsVariadic() {
		fixed = n - 1
	}

	in := make([]reflect.Value, 0, max(n, len(args)))
	for i := 0; i < fixed; i++ {
		var arg any
		if i < len(args) {
			arg = args[i]
		}
		in = append(in, argValue(t.In(i), arg, i))
	}
	if t.IsVariadic() {
		elem := t.In(n - 1).Elem()
		for i := fixed; i < len(args); i++ {
			in = append(in, argValue(elem, args[i], i))
		}
	}
	return in
}

func argValue(want reflect.Type, arg any, pos int) reflect.Value {
	if arg == nil {
		return reflect.Zero(want)
	}
	v := reflect.ValueOf(arg)
	switch {
	case v.Type().AssignableTo(want):
		return v
	case isNumeric(v.Kind()) && isNumeric(want.Kind()):
		return v.Convert(want)
	}
	panic(fmt.Sprintf("fsa: argument %d is %s, creator wants %s", pos, v.Type(), want))
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

// isNilFunc reports whether x is nil or a nil function value.
func isNilFunc(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	return v.Kind() == reflect.Func && v.IsNil()
}

// reducerOf adapts x into a Reducer[S]. A nil result with ok set means the
// identity.
func reducerOf[S any](x any) (Reducer[S], bool) {
	switch r := x.(type) {
	case nil:
		return nil, true
	case Reducer[S]:
		return r, true
	case func(S, Message) S:
		return r, true
	case func(S) S:
		if r == nil {
			return nil, true
		}
		return func(state S, _ Message) S { return r(state) }, true
	}
	return nil, false
}

// reducerPairOf splits x into its success and error reducers. Either may be
// nil, meaning the identity.
func reducerPairOf[S any](x any) (next, throw Reducer[S], ok bool) {
	if r, ok := reducerOf[S](x); ok {
		return r, r, true
	}

	switch p := x.(type) {
	case ReducerPair[S]:
		return p.Next, p.Throw, true
	case *ReducerPair[S]:
		if p == nil {
			return nil, nil, false
		}
		return p.Next, p.Throw, true
	case map[string]any:
		for k, v := range p {
			if k != "next" && k != "throw" {
				return nil, nil, false
			}
			if _, ok := reducerOf[S](v); !ok {
				return nil, nil, false
			}
		}
		next, _ = reducerOf[S](p["next"])
		throw, _ = reducerOf[S](p["throw"])
		return next, throw, true
	}
	return nil, nil, false
}
