package models

import (
	"strings"
)

// ValidationErrors maps a field to a human-readable message. It is empty iff
// the draft is acceptable.
type ValidationErrors map[Field]string

// OK reports whether no field failed.
func (v ValidationErrors) OK() bool {
	return len(v) == 0
}

// Fields returns the failing fields in form order.
func (v ValidationErrors) Fields() []Field {
	out := make([]Field, 0, len(v))
	for _, f := range FormFields {
		if _, ok := v[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, f := range v.Fields() {
		parts = append(parts, string(f)+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Clone returns an independent copy.
func (v ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(v))
	for k, m := range v {
		out[k] = m
	}
	return out
}
