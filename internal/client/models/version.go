package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
)

// Version selects the record schema, rule set and storage key.
type Version string

const (
	VersionBasic Version = "v1"
	VersionFull  Version = "v2"
)

// ParseVersion accepts "v1" / "v2" (case-insensitive) and the aliases "basic" / "full".
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v1", "basic":
		return VersionBasic, nil
	case "v2", "full":
		return VersionFull, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnsupportedVersion, s)
}

// StorageKey is the persistent-store key the version lives under. The two
// versions never share a key.
func (v Version) StorageKey() string {
	if v == VersionBasic {
		return "crud-products-data"
	}
	return "crud-products-data-full"
}

// Seed is the list used when nothing has been persisted yet.
func (v Version) Seed() []Product {
	if v == VersionBasic {
		return []Product{
			{ID: 1, Name: "Food", Description: "Ready-to-eat food products"},
			{ID: 2, Name: "Beverages", Description: "Assorted cold & hot drinks"},
		}
	}
	return []Product{}
}

// Fields lists the form fields the version edits, in form order.
func (v Version) Fields() []Field {
	if v == VersionBasic {
		return []Field{FieldName, FieldDescription}
	}
	return FormFields
}
