package fsa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ActionReducerSuite struct {
	suite.Suite
	prev counter
}

func TestActionReducerSuite(t *testing.T) {
	suite.Run(t, new(ActionReducerSuite))
}

func (s *ActionReducerSuite) SetupTest() {
	s.prev = counter{Count: 3}
}

func add(state counter, msg Message) counter {
	n, _ := PayloadAs[int](msg)
	return counter{Count: state.Count + n}
}

func (s *ActionReducerSuite) mustReducer(t any, r any, def counter) Reducer[counter] {
	reducer, err := MakeActionReducer(t, r, def)
	s.Require().NoError(err)
	return reducer
}

func (s *ActionReducerSuite) TestReturnsPreviousStateWhenTypeDoesNotMatch() {
	reducer := s.mustReducer("NOT_TYPE", add, counter{})

	s.Assert().Equal(s.prev, reducer(s.prev, Message{Type: typ, Payload: 7}))
}

func (s *ActionReducerSuite) TestUnmatchedMessagePreservesIdentity() {
	reducer, err := MakeActionReducer("NOT_TYPE", func(p *counter, _ Message) *counter {
		return &counter{Count: p.Count + 1}
	}, (*counter)(nil))
	s.Require().NoError(err)

	state := &counter{Count: 3}
	s.Assert().Same(state, reducer(state, Message{Type: "UNRELATED"}))
}

func (s *ActionReducerSuite) TestNilReducerIsIdentity() {
	reducer := s.mustReducer(typ, nil, counter{})

	s.Assert().Equal(s.prev, reducer(s.prev, Message{Type: typ}))
}

func (s *ActionReducerSuite) TestRejectsWrongShapes() {
	for _, bad := range []any{
		1,
		map[string]any{"throw": 1},
		map[string]any{"next": add, "extra": add},
		[]int{},
		"string",
		func(n int) int { return n },
		ReducerPair[string]{},
	} {
		_, err := MakeActionReducer(typ, bad, counter{})
		s.Assert().ErrorIs(err, ErrInvalidReducer, "%#v", bad)
	}
}

func (s *ActionReducerSuite) TestRejectsMissingType() {
	_, err := MakeActionReducer(nil, add, counter{})
	s.Assert().ErrorIs(err, ErrInvalidType)

	_, err = MakeActionReducer(3.5, add, counter{})
	s.Assert().ErrorIs(err, ErrInvalidType)
}

func (s *ActionReducerSuite) TestDefaultStateWhenUnsetAndUnmatched() {
	reducer, err := MakeActionReducer("NOT_TYPE", nil, map[string]int{"count": 7})
	s.Require().NoError(err)

	s.Assert().Equal(map[string]int{"count": 7}, reducer(nil, Message{Type: typ}))
}

func (s *ActionReducerSuite) TestDefaultStateWhenUnsetAndMatched() {
	reducer, err := MakeActionReducer(typ, func(state map[string]int, msg Message) map[string]int {
		n, _ := PayloadAs[int](msg)
		return map[string]int{"count": state["count"] + n}
	}, map[string]int{"count": 3})
	s.Require().NoError(err)

	s.Assert().Equal(map[string]int{"count": 10}, reducer(nil, Message{Type: typ, Payload: 7}))
}

func (s *ActionReducerSuite) TestZeroStructIsNotUnset() {
	reducer := s.mustReducer("NOT_TYPE", nil, counter{Count: 7})
	s.Assert().Equal(counter{}, reducer(counter{}, Message{Type: typ}))

	dec := s.mustReducer("DEC", func(state counter) counter {
		return counter{Count: state.Count - 1}
	}, counter{Count: 1})

	state := dec(counter{Count: 1}, Message{Type: "DEC"})
	s.Require().Equal(counter{Count: 0}, state)
	state = dec(state, Message{Type: "DEC"})
	s.Assert().Equal(counter{Count: -1}, state)
}

func (s *ActionReducerSuite) TestZeroScalarIsNotUnset() {
	reducer, err := MakeActionReducer(typ, func(n int) int { return n - 1 }, 5)
	s.Require().NoError(err)

	s.Assert().Equal(-1, reducer(0, Message{Type: typ}))
	s.Assert().Equal(0, reducer(0, Message{Type: "OTHER"}))
}

func (s *ActionReducerSuite) TestDefaultPointerState() {
	def := &counter{Count: 7}
	reducer, err := MakeActionReducer("NOT_TYPE", nil, def)
	s.Require().NoError(err)

	s.Assert().Same(def, reducer(nil, Message{Type: typ}))
}

func (s *ActionReducerSuite) TestSingleReducerHandlesErrorsAndNonErrors() {
	reducer := s.mustReducer(typ, func(state counter, msg Message) counter {
		if _, ok := msg.Payload.(error); ok {
			return state
		}
		return add(state, msg)
	}, counter{})

	s.Assert().Equal(counter{Count: 10}, reducer(s.prev, Message{Type: typ, Payload: 7}))
	s.Assert().Equal(s.prev, reducer(s.prev, Message{Type: typ, Payload: errors.New("boom"), Error: true}))
}

func (s *ActionReducerSuite) TestAcceptsActionCreatorAsType() {
	increment, err := MakeActionCreator(typ, nil, nil)
	s.Require().NoError(err)
	reducer := s.mustReducer(increment, add, counter{})

	s.Assert().Equal(counter{Count: 10}, reducer(s.prev, increment.Create(7)))
}

func (s *ActionReducerSuite) TestStateOnlyReducer() {
	reducer := s.mustReducer(typ, func(state counter) counter {
		return counter{Count: state.Count * 2}
	}, counter{})

	s.Assert().Equal(counter{Count: 6}, reducer(s.prev, Message{Type: typ}))
}

func (s *ActionReducerSuite) TestPairNextNilIsIdentity() {
	reducer := s.mustReducer(typ, ReducerPair[counter]{Throw: add}, counter{})

	s.Assert().Equal(s.prev, reducer(s.prev, Message{Type: typ, Payload: 7}))
}

func (s *ActionReducerSuite) TestPairThrowNilIsIdentity() {
	reducer := s.mustReducer(typ, ReducerPair[counter]{Next: add}, counter{})

	s.Assert().Equal(s.prev, reducer(s.prev, Message{Type: typ, Payload: 7, Error: true}))
}

func (s *ActionReducerSuite) TestPairUsesNextForNonErrors() {
	reducer := s.mustReducer(typ, &ReducerPair[counter]{Next: add}, counter{})

	s.Assert().Equal(counter{Count: 10}, reducer(s.prev, Message{Type: typ, Payload: 7}))
}

func (s *ActionReducerSuite) TestPairUsesThrowForErrors() {
	reducer := s.mustReducer(typ, map[string]any{"throw": add}, counter{})

	s.Assert().Equal(counter{Count: 10}, reducer(s.prev, Message{Type: typ, Payload: 7, Error: true}))
}

func (s *ActionReducerSuite) TestPairUnmatchedReturnsPreviousState() {
	reducer := s.mustReducer("NOT_TYPE", ReducerPair[counter]{Next: add}, counter{})

	s.Assert().Equal(s.prev, reducer(s.prev, Message{Type: typ, Payload: 7}))
}

func (s *ActionReducerSuite) TestCombinedTypeMatchesEachConstituent() {
	one, err := MakeActionCreator("ONE", nil, nil)
	s.Require().NoError(err)
	both, err := CombineActions(one, "TWO")
	s.Require().NoError(err)

	combined := s.mustReducer(both, add, counter{})
	onlyOne := s.mustReducer("ONE", add, counter{})
	onlyTwo := s.mustReducer("TWO", add, counter{})

	msgOne := one.Create(4)
	msgTwo := Message{Type: "TWO", Payload: 5}
	s.Assert().Equal(onlyOne(s.prev, msgOne), combined(s.prev, msgOne))
	s.Assert().Equal(onlyTwo(s.prev, msgTwo), combined(s.prev, msgTwo))
	s.Assert().Equal(s.prev, combined(s.prev, Message{Type: "THREE", Payload: 6}))
}

func (s *ActionReducerSuite) TestCombinedTypeDoesNotMatchJoinedString() {
	both, err := CombineActions("ONE", "TWO")
	s.Require().NoError(err)
	reducer := s.mustReducer(both, add, counter{})

	s.Assert().Equal(s.prev, reducer(s.prev, Message{Type: both.String(), Payload: 1}))
}

func (s *ActionReducerSuite) TestCounterScenario() {
	inc, err := MakeActionCreator("INCREMENT", nil, nil)
	s.Require().NoError(err)
	reducer := s.mustReducer(inc, add, counter{Count: 0})

	s.Assert().Equal(counter{Count: 5}, reducer(counter{}, inc.Create(5)))
}

func (s *ActionReducerSuite) TestNextThrowScenario() {
	type status struct {
		Name string
		OK   bool
	}
	reducer, err := MakeActionReducer("T", ReducerPair[status]{
		Next:  func(st status, _ Message) status { st.OK = true; return st },
		Throw: func(st status, _ Message) status { st.OK = false; return st },
	}, status{})
	s.Require().NoError(err)

	state := status{Name: "fetch", OK: true}
	s.Assert().Equal(status{Name: "fetch", OK: false},
		reducer(state, Message{Type: "T", Error: true, Payload: errors.New("failed")}))
	s.Assert().Equal(status{Name: "fetch", OK: true}, reducer(state, Message{Type: "T"}))
}
