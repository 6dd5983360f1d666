package fsa

import (
	"github.com/tidwall/gjson"
)

// Inspector examines raw bytes and returns a View for field queries.
type Inspector interface {
	Inspect(raw []byte) (View, error)
}

// View provides format-agnostic field access for discriminator matching and
// message decoding.
type View interface {
	// HasField returns true if the path exists in the message.
	HasField(path string) bool

	// Fields returns the top-level field names, or nil if the message is
	// not an object. An empty object yields an empty, non-nil slice.
	Fields() []string

	// GetString returns the string value at path, or false if not found
	// or not a string.
	GetString(path string) (string, bool)

	// GetBool returns the boolean value at path, or false if not found or
	// not a boolean.
	GetBool(path string) (value, ok bool)

	// GetBytes returns the raw bytes at path, or false if not found.
	// For JSON, this returns the raw JSON value (including quotes for strings).
	GetBytes(path string) ([]byte, bool)
}

// JSONInspector returns an Inspector that uses gjson for field access.
func JSONInspector() Inspector {
	return jsonInspector{}
}

type jsonInspector struct{}

func (jsonInspector) Inspect(raw []byte) (View, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	return jsonView{raw: raw}, nil
}

type jsonView struct {
	raw []byte
}

func (v jsonView) HasField(path string) bool {
	return gjson.GetBytes(v.raw, path).Exists()
}

func (v jsonView) Fields() []string {
	root := gjson.ParseBytes(v.raw)
	if !root.IsObject() {
		return nil
	}
	fields := []string{}
	root.ForEach(func(key, _ gjson.Result) bool {
		fields = append(fields, key.String())
		return true
	})
	return fields
}

func (v jsonView) GetString(path string) (string, bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() {
		return "", false
	}
	if r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

func (v jsonView) GetBool(path string) (value, ok bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.IsBool() {
		return false, false
	}
	return r.Bool(), true
}

func (v jsonView) GetBytes(path string) ([]byte, bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() {
		return nil, false
	}
	return []byte(r.Raw), true
}
