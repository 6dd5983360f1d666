package fsa

import "errors"

// Construction errors. Every factory in this package fails fast with one of
// these (wrapped with detail) instead of deferring the failure into the
// returned creator or reducer. Use errors.Is to classify them.
var (
	// ErrInvalidPayloadCreator is returned when a payload creator is neither
	// nil nor a function with at least one parameter and exactly one result.
	ErrInvalidPayloadCreator = errors.New("invalid payload creator")

	// ErrInvalidMetaCreator is returned when a meta creator is non-nil but
	// not a function with exactly one result.
	ErrInvalidMetaCreator = errors.New("invalid meta creator")

	// ErrInvalidReducer is returned when a reducer is neither nil, a reducer
	// function, nor a next/throw pair of reducer functions.
	ErrInvalidReducer = errors.New("invalid reducer")

	// ErrInvalidType is returned when a type argument is missing, empty, or
	// neither a string nor a TypeRef.
	ErrInvalidType = errors.New("invalid action type")

	// ErrInvalidBatchShape is returned when the arguments to MakeActionCreators
	// or CombineActions match none of the accepted forms.
	ErrInvalidBatchShape = errors.New("invalid batch shape")
)

// Wire errors, returned by DecodeMessage, PayloadAs and Store.Process.
var (
	// ErrInvalidJSON is returned when the input is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotStandard is returned when a JSON document is not shaped like a
	// standard action.
	ErrNotStandard = errors.New("not a standard action")

	// ErrPayloadType is returned when a payload cannot be converted to the
	// requested type.
	ErrPayloadType = errors.New("payload type mismatch")
)
