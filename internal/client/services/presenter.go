package services

import (
	"context"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
)

// Notifier receives user-facing notifications. Display and auto-dismiss are
// up to the implementation.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// Observer is told about state the presentation layer re-renders from.
type Observer interface {
	// ProductsChanged receives the full list after it was loaded or mutated.
	ProductsChanged(ctx context.Context, products []models.Product)
	// Validated receives the error set of every submit attempt.
	Validated(ctx context.Context, errs models.ValidationErrors)
}

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(ctx context.Context, question string) bool
}

// Presenter is everything the catalog service needs from a UI.
type Presenter interface {
	Notifier
	Observer
	Confirmer
}

// NopObserver ignores every event. Embed it when only some events matter.
type NopObserver struct{}

func (NopObserver) ProductsChanged(context.Context, []models.Product)  {}
func (NopObserver) Validated(context.Context, models.ValidationErrors) {}
