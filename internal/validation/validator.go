// Package validation checks write requests against persisted state before
// any aggregate is built from them.
package validation

import (
	"context"
	"fmt"
)

// Violation is one problem found in a request.
type Violation struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.Field == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Validator checks one field of a request of type T.
// A nil violation means the field passed; an error means the check could not run.
type Validator[T any] interface {
	Validate(ctx context.Context, req T) (*Violation, error)
}

// Lookup asks the store about a single value.
type Lookup[V any] func(ctx context.Context, value V) (bool, error)

// Field extracts the candidate value of a request. ok is false when the field is absent.
type Field[T, V any] func(req T) (value V, ok bool)

type unique[T any, V any] struct {
	field string
	code  string
	value Field[T, V]
	taken Lookup[V]
}

// Unique rejects a value that is already persisted. Absent values are not checked.
func Unique[T any, V any](field, code string, value func(T) (V, bool), taken func(context.Context, V) (bool, error)) Validator[T] {
	return &unique[T, V]{field: field, code: code, value: value, taken: taken}
}

func (u *unique[T, V]) Validate(ctx context.Context, req T) (*Violation, error) {
	v, ok := u.value(req)
	if !ok {
		return nil, nil
	}
	taken, err := u.taken(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("uniqueness lookup for %s: %w", u.field, err)
	}
	if !taken {
		return nil, nil
	}
	return &Violation{Field: u.field, Code: u.code, Message: fmt.Sprintf("%s is already registered", u.field)}, nil
}

type exists[T any, V any] struct {
	field string
	code  string
	value Field[T, V]
	found Lookup[V]
}

// Exists rejects a reference that does not resolve. An absent reference is allowed.
func Exists[T any, V any](field, code string, value func(T) (V, bool), found func(context.Context, V) (bool, error)) Validator[T] {
	return &exists[T, V]{field: field, code: code, value: value, found: found}
}

func (e *exists[T, V]) Validate(ctx context.Context, req T) (*Violation, error) {
	v, ok := e.value(req)
	if !ok {
		return nil, nil
	}
	found, err := e.found(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("existence lookup for %s: %w", e.field, err)
	}
	if found {
		return nil, nil
	}
	return &Violation{Field: e.field, Code: e.code, Message: fmt.Sprintf("%s is not registered", e.field)}, nil
}

type notSelf[T any, V comparable] struct {
	field string
	code  string
	self  Field[T, V]
	ref   Field[T, V]
}

// NotSelf rejects a request whose reference points back at its own identity.
// Only the direct hop is checked; longer cycles are not detected.
func NotSelf[T any, V comparable](field, code string, self, ref func(T) (V, bool)) Validator[T] {
	return &notSelf[T, V]{field: field, code: code, self: self, ref: ref}
}

func (n *notSelf[T, V]) Validate(_ context.Context, req T) (*Violation, error) {
	id, ok := n.self(req)
	if !ok {
		return nil, nil
	}
	ref, ok := n.ref(req)
	if !ok || ref != id {
		return nil, nil
	}
	return &Violation{Field: n.field, Code: n.code, Message: fmt.Sprintf("%s must not reference itself", n.field)}, nil
}

// Int64 reads an optional identifier.
func Int64(p *int64) (int64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// String reads a string that counts as absent when empty.
func String(s string) (string, bool) {
	return s, s != ""
}
