package component

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vango-dev/htmlcomponent/internal/errors"
)

// Attributes is an insertion-ordered attribute map. Setting a key that is
// already present replaces its value without moving it.
//
// The zero value is an empty map ready to use.
type Attributes struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewAttributes returns a map holding pairs in order. Later duplicates
// overwrite earlier ones in place.
func NewAttributes(pairs ...Attribute) *Attributes {
	a := &Attributes{}
	for _, p := range pairs {
		a.Set(p.Key, p.Value)
	}
	return a
}

// Attribute is a single rendered key/value pair.
type Attribute struct {
	Key   string
	Value string
}

// Set stores value under key.
func (a *Attributes) Set(key, value string) {
	if a.m == nil {
		a.m = orderedmap.New[string, string]()
	}
	a.m.Set(key, value)
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil || a.m == nil {
		return "", false
	}
	return a.m.Get(key)
}

// Delete removes key, reporting whether it was present.
func (a *Attributes) Delete(key string) bool {
	if a == nil || a.m == nil {
		return false
	}
	_, ok := a.m.Delete(key)
	return ok
}

// Len returns the number of keys.
func (a *Attributes) Len() int {
	if a == nil || a.m == nil {
		return 0
	}
	return a.m.Len()
}

// Each calls fn for every pair in insertion order.
func (a *Attributes) Each(fn func(key, value string)) {
	if a == nil || a.m == nil {
		return
	}
	for p := a.m.Oldest(); p != nil; p = p.Next() {
		fn(p.Key, p.Value)
	}
}

// Keys returns the keys in insertion order.
func (a *Attributes) Keys() []string {
	keys := make([]string, 0, a.Len())
	a.Each(func(k, _ string) { keys = append(keys, k) })
	return keys
}

// Pairs returns the pairs in insertion order.
func (a *Attributes) Pairs() []Attribute {
	pairs := make([]Attribute, 0, a.Len())
	a.Each(func(k, v string) { pairs = append(pairs, Attribute{Key: k, Value: v}) })
	return pairs
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	c := &Attributes{}
	a.Each(c.Set)
	return c
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	if a == nil || a.m == nil {
		return []byte("{}"), nil
	}
	return a.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object of strings, keeping key order.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	m := orderedmap.New[string, string]()
	if err := m.UnmarshalJSON(data); err != nil {
		return err
	}
	a.m = m
	return nil
}

// ParseAttribute splits a "key value" pair on its first space. Everything
// after that space, further spaces included, is the value.
func ParseAttribute(pair string) (key, value string, err error) {
	key, value, ok := strings.Cut(pair, " ")
	switch {
	case !ok:
		return "", "", errors.New(errors.CodeInvalidAttribute).
			WithDetailf("%q has no space between key and value", pair)
	case key == "":
		return "", "", errors.New(errors.CodeInvalidAttribute).
			WithDetailf("%q starts with a space and has no key", pair)
	}
	return key, value, nil
}
