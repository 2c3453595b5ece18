package models

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
)

// Field names a form field. Values match the JSON field names of Product.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldPrice       Field = "price"
	FieldCategory    Field = "category"
	FieldReleaseDate Field = "releaseDate"
	FieldStock       Field = "stock"
	FieldIsActive    Field = "isActive"
)

// FormFields lists all fields in form order.
var FormFields = []Field{
	FieldName,
	FieldDescription,
	FieldPrice,
	FieldCategory,
	FieldReleaseDate,
	FieldStock,
	FieldIsActive,
}

// ParseField resolves s to a Field. Names are case-sensitive.
func ParseField(s string) (Field, error) {
	for _, f := range FormFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownField, s)
}

// Draft holds raw form input. Numeric and date fields stay strings until the
// draft has been validated.
type Draft struct {
	Name        string
	Description string
	Price       string
	Category    string
	ReleaseDate string
	Stock       string
	IsActive    bool
}

// DraftFromProduct prefills a draft for editing p under version v. The v1
// form has no numeric fields, so they stay empty there.
func DraftFromProduct(p Product, v Version) Draft {
	d := Draft{Name: p.Name, Description: p.Description}
	if v == VersionBasic {
		return d
	}
	d.Price = strconv.FormatFloat(p.Price, 'f', -1, 64)
	d.Category = p.Category
	d.ReleaseDate = p.ReleaseDate.String()
	d.Stock = strconv.FormatInt(p.Stock, 10)
	d.IsActive = p.IsActive
	return d
}

// Get returns the raw value of f.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldDescription:
		return d.Description
	case FieldPrice:
		return d.Price
	case FieldCategory:
		return d.Category
	case FieldReleaseDate:
		return d.ReleaseDate
	case FieldStock:
		return d.Stock
	case FieldIsActive:
		return strconv.FormatBool(d.IsActive)
	}
	return ""
}

// Set assigns a raw value to f. isActive must parse with strconv.ParseBool.
func (d *Draft) Set(f Field, value string) error {
	switch f {
	case FieldName:
		d.Name = value
	case FieldDescription:
		d.Description = value
	case FieldPrice:
		d.Price = value
	case FieldCategory:
		d.Category = value
	case FieldReleaseDate:
		d.ReleaseDate = value
	case FieldStock:
		d.Stock = value
	case FieldIsActive:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: isActive=%q", common.ErrInvalidValue, value)
		}
		d.IsActive = b
	default:
		return fmt.Errorf("%w: %q", common.ErrUnknownField, string(f))
	}
	return nil
}
