package fsa

// Discriminator decides whether a raw message is acceptable from a View,
// without decoding it.
type Discriminator interface {
	Match(v View) bool
}

// DiscriminatorFunc adapts a function to a Discriminator.
type DiscriminatorFunc func(v View) bool

// Match implements Discriminator.
func (f DiscriminatorFunc) Match(v View) bool { return f(v) }

// HasFields returns a Discriminator that matches when all paths exist.
func HasFields(paths ...string) Discriminator {
	return hasFields{paths: paths}
}

type hasFields struct {
	paths []string
}

func (d hasFields) Match(v View) bool {
	for _, p := range d.paths {
		if !v.HasField(p) {
			return false
		}
	}
	return true
}

// FieldEquals returns a Discriminator that matches when the path exists
// and equals the given string value.
func FieldEquals(path, value string) Discriminator {
	return fieldEquals{path: path, value: value}
}

type fieldEquals struct {
	path  string
	value string
}

func (d fieldEquals) Match(v View) bool {
	s, ok := v.GetString(d.path)
	return ok && s == d.value
}

// OnlyFields returns a Discriminator that matches objects whose top-level
// fields are all among names. Missing fields are allowed.
func OnlyFields(names ...string) Discriminator {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}
	return onlyFields{allowed: allowed}
}

type onlyFields struct {
	allowed map[string]struct{}
}

func (d onlyFields) Match(v View) bool {
	fields := v.Fields()
	if fields == nil {
		return false
	}
	for _, f := range fields {
		if _, ok := d.allowed[f]; !ok {
			return false
		}
	}
	return true
}

// And returns a Discriminator that matches when all discriminators match.
func And(ds ...Discriminator) Discriminator {
	return and{ds: ds}
}

type and struct {
	ds []Discriminator
}

func (d and) Match(v View) bool {
	for _, disc := range d.ds {
		if !disc.Match(v) {
			return false
		}
	}
	return true
}

// Or returns a Discriminator that matches when any discriminator matches.
func Or(ds ...Discriminator) Discriminator {
	return or{ds: ds}
}

type or struct {
	ds []Discriminator
}

func (d or) Match(v View) bool {
	for _, disc := range d.ds {
		if disc.Match(v) {
			return true
		}
	}
	return false
}

// Standard returns a Discriminator that matches standard actions: an object
// with a non-empty string "type", no fields other than type, payload, error
// and meta, and a boolean "error" when present.
func Standard() Discriminator {
	return And(
		OnlyFields("type", "payload", "error", "meta"),
		DiscriminatorFunc(func(v View) bool {
			s, ok := v.GetString("type")
			return ok && s != ""
		}),
		DiscriminatorFunc(func(v View) bool {
			if !v.HasField("error") {
				return true
			}
			_, ok := v.GetBool("error")
			return ok
		}),
	)
}
