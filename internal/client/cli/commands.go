package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
)

// List prints the product table.
func (a *App) List(ctx context.Context) error {
	return renderProducts(a.out, a.catalog.Products(), a.catalog.Version())
}

// Add discards any draft, prompts for every field and submits the result.
func (a *App) Add(ctx context.Context) error {
	a.catalog.Cancel()
	if err := a.promptFields(ctx); err != nil {
		return err
	}
	return a.Submit(ctx)
}

// clearValue, typed at a field prompt, empties the field.
const clearValue = "-"

// Edit loads product id into the form, prompts over its fields and submits.
// An empty answer keeps the current value; "-" clears it.
func (a *App) Edit(ctx context.Context, id int64) error {
	if err := a.catalog.Edit(ctx, id); err != nil {
		return err
	}
	if err := a.promptFields(ctx); err != nil {
		return err
	}
	return a.Submit(ctx)
}

func (a *App) promptFields(ctx context.Context) error {
	for _, f := range a.catalog.Version().Fields() {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			current := a.catalog.Draft().Get(f)
			prompt := "Enter " + string(f)
			switch f {
			case models.FieldIsActive:
				prompt += " (true/false)"
			case models.FieldCategory:
				prompt += " " + categoryChoices()
			}
			if current != "" {
				prompt += fmt.Sprintf(" [%s, - to clear]", current)
			}

			value, err := GetSimpleText(a.reader, prompt, a.out)
			if err != nil {
				return fmt.Errorf("read %s: %w", f, err)
			}
			if value == "" {
				break
			}
			if value == clearValue {
				value = ""
			} else if f == models.FieldCategory {
				value = resolveCategory(value)
				if !models.IsCategory(value) {
					fmt.Fprintln(a.out, "Pick one of the listed categories.")
					continue
				}
			}
			if err := a.catalog.SetField(f, value); err != nil {
				fmt.Fprintln(a.out, "error:", err)
				continue
			}
			break
		}
	}
	return nil
}

func categoryChoices() string {
	choices := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		choices[i] = fmt.Sprintf("%d) %s", i+1, c)
	}
	return "(" + strings.Join(choices, ", ") + ")"
}

// resolveCategory maps a 1-based choice number to its category; anything
// else is returned as typed.
func resolveCategory(value string) string {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > len(models.Categories) {
		return value
	}
	return models.Categories[n-1]
}

// Set assigns one draft field.
func (a *App) Set(ctx context.Context, field, value string) error {
	f, err := models.ParseField(field)
	if err != nil {
		return err
	}
	return a.catalog.SetField(f, value)
}

// Show prints the draft with its validation errors.
func (a *App) Show(ctx context.Context) error {
	title := "New product"
	if id, ok := a.catalog.EditingID(); ok {
		title = fmt.Sprintf("Editing product #%d", id)
	}
	return renderDraft(a.out, title, a.catalog.Draft(), a.catalog.Errors(), a.catalog.Version())
}

// Submit validates the draft and saves it. Rejections are reported by the
// presenter and are not errors.
func (a *App) Submit(ctx context.Context) error {
	_, err := a.catalog.Submit(ctx)
	return err
}

// Cancel discards the draft and leaves edit mode.
func (a *App) Cancel(ctx context.Context) error {
	a.catalog.Cancel()
	return nil
}

// Delete removes product id after confirmation. Unknown ids are ignored.
func (a *App) Delete(ctx context.Context, id int64) error {
	_, err := a.catalog.Delete(ctx, id)
	return err
}
