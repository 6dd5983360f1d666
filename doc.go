// Package fsa builds standard actions and the reducers that fold them into
// state.
//
// A standard action (a Message) is a type tag with an optional payload, an
// error flag and optional metadata. Action creators stamp messages of one type;
// reducers react only to the types they were built for.
//
// # Quick Start
//
// Build an action creator and a reducer for it:
//
//	increment, err := fsa.MakeActionCreator("INCREMENT", nil, nil)
//	if err != nil {
//	    return err
//	}
//
//	reducer, err := fsa.MakeActionReducer(increment, func(s Counter, m fsa.Message) Counter {
//	    n, _ := fsa.PayloadAs[int](m)
//	    return Counter{Count: s.Count + n}
//	}, Counter{})
//
//	state := reducer(Counter{}, increment.Create(5)) // Counter{Count: 5}
//
// # Action Creators
//
// MakeActionCreator takes a type, an optional payload creator and an optional
// meta creator. The payload creator receives the Create arguments; nil means
// the first argument is the payload. Any function with at least one parameter
// and one result is accepted:
//
//	add, _ := fsa.MakeActionCreator("ADD", func(key string, n int) map[string]int {
//	    return map[string]int{key: n}
//	}, nil)
//
//	add.Create("apples", 3) // {Type: "ADD", Payload: map[apples:3]}
//
// When the first argument is an error, the payload creator is not called. The
// error becomes the payload and Error is set:
//
//	add.Create(errors.New("boom")) // {Type: "ADD", Payload: boom, Error: true}
//
// A nil payload is omitted. Go has no separate null, so a payload creator that
// returns nil produces a message without a payload.
//
// MakeActionCreators builds several at once, keyed by CamelCase identifier:
//
//	creators, _ := fsa.MakeActionCreators(map[string]any{
//	    "ADD_TODO": func(text string) Todo { return Todo{Text: text} },
//	}, "CLEAR_TODOS")
//
//	creators["addTodo"].Create("write docs")
//	creators["clearTodos"].Create()
//
// The named variants ActionCreatorsFromMap, ActionCreatorsFromTypes and
// ActionCreatorsFromMapAndTypes avoid shape sniffing. Use NewFactory with
// WithIdentifier to change how identifiers are derived.
//
// # Type References
//
// Anywhere a type is accepted, pass a string or a TypeRef. An *ActionCreator
// is a TypeRef for its own type, and CombineActions merges several types into
// a CombinedType that a reducer matches against any of its members:
//
//	both, _ := fsa.CombineActions(increment, "DECREMENT")
//	reducer, _ := fsa.MakeActionReducer(both, recount, Counter{})
//
// # Reducers
//
// MakeActionReducer accepts a reducer function, nil (the identity), or a
// ReducerPair whose Next handles normal messages and Throw handles messages
// flagged as errors:
//
//	reducer, _ := fsa.MakeActionReducer("FETCH", fsa.ReducerPair[State]{
//	    Next:  func(s State, m fsa.Message) State { s.OK = true; return s },
//	    Throw: func(s State, m fsa.Message) State { s.OK = false; return s },
//	}, State{})
//
// Messages of other types return the input state untouched. A nil state
// (pointer, map, slice, interface) counts as unset and is replaced by the
// default state; zero structs and numbers are kept as they are.
//
// MakeActionReducers folds a message through one reducer per Handler, in
// slice order. HandlersFromMap converts a map, sorted by type.
//
// # Construction Errors
//
// Factories validate their arguments and return an error immediately; a
// creator or reducer that was built successfully never fails. Errors wrap
// ErrInvalidPayloadCreator, ErrInvalidMetaCreator, ErrInvalidReducer,
// ErrInvalidType or ErrInvalidBatchShape:
//
//	if _, err := fsa.MakeActionReducer("T", 42, State{}); errors.Is(err, fsa.ErrInvalidReducer) {
//	    // ...
//	}
//
// # Wire Format
//
// Messages encode to JSON with absent fields omitted. DecodeMessage reads
// them back, leaving payload and meta as json.RawMessage for PayloadAs.
// IsStandard and the Standard discriminator check the shape without decoding;
// HasFields, FieldEquals, OnlyFields, And and Or compose further checks.
//
// # Store
//
// Store holds a state value and applies a reducer to each dispatched message.
// Process accepts raw JSON:
//
//	store := fsa.NewStore(reducer, Counter{},
//	    fsa.WithLogger(logger),
//	    fsa.WithOnInvalid(func(ctx context.Context, raw []byte, err error) error {
//	        return nil // skip malformed input
//	    }),
//	)
//	state, err := store.Process(ctx, []byte(`{"type":"INCREMENT","payload":2}`))
//
// # Thread Safety
//
// Creators and reducers are immutable and safe to share. Store serializes
// dispatches and may be used from multiple goroutines.
package fsa
