package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/validation"
	"github.com/mattn/go-runewidth"
)

// maxCellWidth caps a table column; longer cells are truncated with "…".
const maxCellWidth = 40

func productRow(p models.Product, v models.Version) []string {
	id := strconv.FormatInt(p.ID, 10)
	if v == models.VersionBasic {
		return []string{id, p.Name, p.Description}
	}
	active := "no"
	if p.IsActive {
		active = "yes"
	}
	return []string{
		id, p.Name, p.Category,
		strconv.FormatFloat(p.Price, 'f', 2, 64),
		strconv.FormatInt(p.Stock, 10),
		p.ReleaseDate.String(), active,
	}
}

func productHeader(v models.Version) []string {
	if v == models.VersionBasic {
		return []string{"ID", "NAME", "DESCRIPTION"}
	}
	return []string{"ID", "NAME", "CATEGORY", "PRICE", "STOCK", "RELEASED", "ACTIVE"}
}

// renderProducts writes products as an aligned table. Widths are measured in
// terminal cells so wide runes do not break alignment.
func renderProducts(w io.Writer, products []models.Product, v models.Version) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products.")
		return err
	}

	rows := [][]string{productHeader(v)}
	for _, p := range products {
		rows = append(rows, productRow(p, v))
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], min(runewidth.StringWidth(cell), maxCellWidth))
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillRight(runewidth.Truncate(cell, maxCellWidth, "…"), widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

// renderDraft writes the form: one line per field of v with its current value
// and, when present, its validation message.
func renderDraft(w io.Writer, title string, d models.Draft, errs models.ValidationErrors, v models.Version) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	for _, f := range v.Fields() {
		line := fmt.Sprintf("  %-12s %s", f, d.Get(f))
		if f == models.FieldDescription && v == models.VersionBasic {
			line += fmt.Sprintf("  (%s)", validation.DescriptionCounter(d))
		}
		if msg, ok := errs[f]; ok {
			line += "  ! " + msg
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// renderErrors writes one "field: message" line per error in form order.
func renderErrors(w io.Writer, errs models.ValidationErrors) {
	for _, f := range errs.Fields() {
		fmt.Fprintf(w, "  %s: %s\n", f, errs[f])
	}
}
