// Package validation checks form drafts against the business rules of a
// model version and coerces accepted drafts into product fields.
//
// Uniqueness is always checked against the product list handed in at submit
// time, never against a cached copy.
package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
)

// Messages surfaced per field.
const (
	MsgNameRequired     = "Product name is required."
	MsgNameTooShort     = "Minimum 3 characters."
	MsgNameTooLong      = "Maximum 50 characters."
	MsgNameTooLongFull  = "Maximum 100 characters."
	MsgNameDuplicate    = "Product name already exists."
	MsgDescriptionLong  = "Description must be at most 200 characters."
	MsgDescriptionShort = "Description must be at least 20 characters."
	MsgPriceRequired    = "Price is required."
	MsgPriceNotNumber   = "Price must be a number."
	MsgPriceNotPositive = "Price must be greater than 0."
	MsgCategoryRequired = "Category is required."
	MsgDateRequired     = "Release date is required."
	MsgDateInvalid      = "Release date must be a valid date (YYYY-MM-DD)."
	MsgDateInFuture     = "Release date cannot be in the future."
	MsgStockRequired    = "Stock is required."
	MsgStockNotNumber   = "Stock must be a number."
	MsgStockNotWhole    = "Stock must be a whole number."
	MsgStockNegative    = "Stock cannot be negative."
	MsgStockTooLarge    = "Stock is too large."
)

// Limits of the v1 and v2 rule sets, counted in characters of the trimmed value.
const (
	BasicNameMin        = 3
	BasicNameMax        = 50
	BasicDescriptionMax = 200
	FullNameMax         = 100
	FullDescriptionMin  = 20
)

// Validator checks drafts for one model version.
type Validator interface {
	// Validate returns a fresh error set for d. editingID is the record being
	// edited when editing is true; it is excluded from the uniqueness check.
	Validate(d models.Draft, products []models.Product, editingID int64, editing bool) models.ValidationErrors

	// Apply copies the coerced values of an accepted draft onto p, leaving p.ID alone.
	Apply(d models.Draft, p *models.Product) error
}

// New returns the validator for v. now is consulted for the release date rule.
func New(v models.Version, now func() time.Time) Validator {
	if v == models.VersionBasic {
		return basicValidator{}
	}
	if now == nil {
		now = time.Now
	}
	return fullValidator{now: now}
}

type basicValidator struct{}

func (basicValidator) Validate(d models.Draft, products []models.Product, editingID int64, editing bool) models.ValidationErrors {
	errs := models.ValidationErrors{}

	name := strings.TrimSpace(d.Name)
	switch n := length(name); {
	case n == 0:
		errs[models.FieldName] = MsgNameRequired
	case n < BasicNameMin:
		errs[models.FieldName] = MsgNameTooShort
	case n > BasicNameMax:
		errs[models.FieldName] = MsgNameTooLong
	case isDuplicate(name, products, editingID, editing):
		errs[models.FieldName] = MsgNameDuplicate
	}

	if length(strings.TrimSpace(d.Description)) > BasicDescriptionMax {
		errs[models.FieldDescription] = MsgDescriptionLong
	}

	return errs
}

func (basicValidator) Apply(d models.Draft, p *models.Product) error {
	p.Name = strings.TrimSpace(d.Name)
	p.Description = strings.TrimSpace(d.Description)
	return nil
}

type fullValidator struct {
	now func() time.Time
}

func (v fullValidator) Validate(d models.Draft, products []models.Product, editingID int64, editing bool) models.ValidationErrors {
	errs := models.ValidationErrors{}

	name := strings.TrimSpace(d.Name)
	switch n := length(name); {
	case n == 0:
		errs[models.FieldName] = MsgNameRequired
	case n > FullNameMax:
		errs[models.FieldName] = MsgNameTooLongFull
	case isDuplicate(name, products, editingID, editing):
		errs[models.FieldName] = MsgNameDuplicate
	}

	if n := length(strings.TrimSpace(d.Description)); n > 0 && n < FullDescriptionMin {
		errs[models.FieldDescription] = MsgDescriptionShort
	}

	if strings.TrimSpace(d.Price) == "" {
		errs[models.FieldPrice] = MsgPriceRequired
	} else if price, err := parseNumber(d.Price); err != nil {
		errs[models.FieldPrice] = MsgPriceNotNumber
	} else if price <= 0 {
		errs[models.FieldPrice] = MsgPriceNotPositive
	}

	if strings.TrimSpace(d.Category) == "" {
		errs[models.FieldCategory] = MsgCategoryRequired
	}

	if strings.TrimSpace(d.ReleaseDate) == "" {
		errs[models.FieldReleaseDate] = MsgDateRequired
	} else if moment, err := models.ParseMoment(strings.TrimSpace(d.ReleaseDate)); err != nil {
		errs[models.FieldReleaseDate] = MsgDateInvalid
	} else if moment.After(v.now()) {
		errs[models.FieldReleaseDate] = MsgDateInFuture
	}

	if strings.TrimSpace(d.Stock) == "" {
		errs[models.FieldStock] = MsgStockRequired
	} else if _, msg := parseStock(d.Stock); msg != "" {
		errs[models.FieldStock] = msg
	}

	return errs
}

func (fullValidator) Apply(d models.Draft, p *models.Product) error {
	price, err := parseNumber(d.Price)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	date, err := models.ParseDate(strings.TrimSpace(d.ReleaseDate))
	if err != nil {
		return fmt.Errorf("release date: %w", err)
	}
	stock, msg := parseStock(d.Stock)
	if msg != "" {
		return fmt.Errorf("stock %q: %s", d.Stock, msg)
	}

	p.Name = strings.TrimSpace(d.Name)
	p.Description = strings.TrimSpace(d.Description)
	p.Price = price
	p.Category = strings.TrimSpace(d.Category)
	p.ReleaseDate = date
	p.Stock = stock
	p.IsActive = d.IsActive
	return nil
}

// parseNumber is a locale-independent decimal parse of the trimmed input.
// NaN and infinities are rejected.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return f, nil
}

// maxStock is 2^63 as a float64; whole floats at or above it do not fit an int64.
const maxStock = float64(math.MaxInt64)

// parseStock returns the stock count in s, or the message telling why s is
// not a valid count. Integers are parsed exactly; other decimal forms such as
// "2.0" or "1e3" go through parseNumber.
func parseStock(s string) (int64, string) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, MsgStockNegative
		}
		return n, ""
	}

	f, err := parseNumber(s)
	switch {
	case err != nil:
		return 0, MsgStockNotNumber
	case f != math.Trunc(f):
		return 0, MsgStockNotWhole
	case f < 0:
		return 0, MsgStockNegative
	case f >= maxStock:
		return 0, MsgStockTooLarge
	}
	return int64(f), ""
}

func isDuplicate(name string, products []models.Product, editingID int64, editing bool) bool {
	lower := strings.ToLower(name)
	for _, p := range products {
		if editing && p.ID == editingID {
			continue
		}
		if strings.ToLower(p.Name) == lower {
			return true
		}
	}
	return false
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}

// DescriptionCounter renders the "n/200" counter of the v1 form.
func DescriptionCounter(d models.Draft) string {
	return fmt.Sprintf("%d/%d", length(d.Description), BasicDescriptionMax)
}
