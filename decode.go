package fsa

import (
	"encoding/json"
	"fmt"
)

var standard = Standard()

// IsStandard reports whether raw is a JSON-encoded standard action.
func IsStandard(raw []byte) bool {
	v, err := JSONInspector().Inspect(raw)
	return err == nil && standard.Match(v)
}

// DecodeMessage decodes a JSON-encoded standard action.
//
// Payload and Meta are left as json.RawMessage; use PayloadAs to decode the
// payload. A JSON null payload or meta is treated as absent.
func DecodeMessage(raw []byte) (Message, error) {
	v, err := JSONInspector().Inspect(raw)
	if err != nil {
		return Message{}, err
	}
	return DecodeView(v)
}

// DecodeView builds a Message from an inspected view, which must satisfy
// Standard.
func DecodeView(v View) (Message, error) {
	if !standard.Match(v) {
		return Message{}, fmt.Errorf("%w: fields %v", ErrNotStandard, v.Fields())
	}

	typ, _ := v.GetString("type")
	msg := Message{Type: typ}
	msg.Error, _ = v.GetBool("error")
	if p := rawField(v, "payload"); p != nil {
		msg.Payload = p
	}
	if m := rawField(v, "meta"); m != nil {
		msg.Meta = m
	}
	return msg, nil
}

func rawField(v View, path string) json.RawMessage {
	b, ok := v.GetBytes(path)
	if !ok || string(b) == "null" {
		return nil
	}
	return json.RawMessage(b)
}
