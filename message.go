package fsa

import (
	"encoding/json"
	"fmt"
)

// Message is a standard action: a type tag plus optional payload, error flag
// and metadata.
//
// A nil Payload or Meta is absent; Error is only ever set to true. Messages
// built by an ActionCreator with an error as the first argument carry that
// error unmodified as Payload and have Error set.
type Message struct {
	// Type identifies what the message means.
	Type string

	// Payload is the computed payload, or the triggering error when Error is
	// set. Messages decoded from JSON carry json.RawMessage here.
	Payload any

	// Error reports that Payload is an error.
	Error bool

	// Meta is extra data computed by the creator's meta creator.
	Meta any
}

type wireMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
	Error   bool   `json:"error,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

type wireError struct {
	Message string `json:"message"`
}

// MarshalJSON encodes the message with absent fields omitted. Error payloads
// are encoded as {"message": err.Error()}.
func (m Message) MarshalJSON() ([]byte, error) {
	w := wireMessage{Type: m.Type, Payload: m.Payload, Error: m.Error, Meta: m.Meta}
	if err, ok := m.Payload.(error); ok {
		w.Payload = wireError{Message: err.Error()}
	}
	return json.Marshal(w)
}

// PayloadAs returns the message payload as T.
//
// Payloads already of type T are returned as is. Raw JSON payloads
// (json.RawMessage or []byte, as produced by DecodeMessage) are unmarshaled
// into T. An absent payload yields the zero value of T.
func PayloadAs[T any](m Message) (T, error) {
	var out T
	switch p := m.Payload.(type) {
	case nil:
		return out, nil
	case T:
		return p, nil
	case json.RawMessage:
		return unmarshalPayload[T](m.Type, p)
	case []byte:
		return unmarshalPayload[T](m.Type, p)
	}
	return out, fmt.Errorf("%w: %s carries %T, want %T", ErrPayloadType, m.Type, m.Payload, out)
}

func unmarshalPayload[T any](typ string, raw []byte) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %s: %w", ErrPayloadType, typ, err)
	}
	return out, nil
}
