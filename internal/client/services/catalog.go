// Package services contains the application services of the catalog client:
// the submission reconciler, the deletion handler and the edit state they
// share.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/store"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/validation"
	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
)

// State is the position of the form in its edit cycle:
//
//	Idle -> Creating | Editing -> Validating -> Idle (accepted)
//	                                         -> Creating | Editing (rejected)
type State string

const (
	StateIdle       State = "idle"
	StateCreating   State = "creating"
	StateEditing    State = "editing"
	StateValidating State = "validating"
)

// MsgSaveFailed is shown when the persistent store refused a write.
const MsgSaveFailed = "Could not save products, please try again."

// CatalogService drives the product form over a record store.
//
// Contract:
//   - Load: read the persisted list (or the seed) and publish it.
//   - SetField / Edit / Cancel: manipulate the draft and the edit state.
//   - Submit: validate against the live list, then create or update.
//   - Delete: confirm, remove and persist; resets the form if the deleted
//     record was being edited.
//
// Validation failures are returned as data, never as errors.
type CatalogService interface {
	Load(ctx context.Context) ([]models.Product, error)
	Products() []models.Product
	Version() models.Version

	Draft() models.Draft
	Errors() models.ValidationErrors
	State() State
	EditingID() (int64, bool)

	SetField(field models.Field, value string) error
	Edit(ctx context.Context, id int64) error
	Cancel()
	Submit(ctx context.Context) (models.ValidationErrors, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type catalogService struct {
	store     *store.Store
	validator validation.Validator
	ui        Presenter
	log       logging.Logger
	now       func() time.Time

	draft     models.Draft
	errs      models.ValidationErrors
	editingID int64
	editing   bool
	state     State
}

// Option customises a catalog service.
type Option func(*catalogService)

// WithClock sets the clock used for notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *catalogService) { s.now = now }
}

// NewCatalogService constructs a CatalogService over st. The caller must
// call Load before using the product list.
func NewCatalogService(st *store.Store, v validation.Validator, ui Presenter, log logging.Logger, opts ...Option) CatalogService {
	s := &catalogService{
		store:     st,
		validator: v,
		ui:        ui,
		log:       log.With("component", "catalog", "version", string(st.Version())),
		now:       time.Now,
		errs:      models.ValidationErrors{},
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *catalogService) Load(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "catalog loaded", "count", len(products))
	s.ui.ProductsChanged(ctx, s.store.Products())
	return products, nil
}

func (s *catalogService) Products() []models.Product { return s.store.Products() }
func (s *catalogService) Version() models.Version    { return s.store.Version() }
func (s *catalogService) Draft() models.Draft        { return s.draft }
func (s *catalogService) State() State               { return s.state }

func (s *catalogService) Errors() models.ValidationErrors { return s.errs.Clone() }

func (s *catalogService) EditingID() (int64, bool) {
	return s.editingID, s.editing
}

func (s *catalogService) SetField(field models.Field, value string) error {
	if !s.ownsField(field) {
		return fmt.Errorf("%w: %q in %s form", common.ErrUnknownField, string(field), s.store.Version())
	}
	if err := s.draft.Set(field, value); err != nil {
		return err
	}
	delete(s.errs, field)
	if s.state == StateIdle {
		s.state = StateCreating
	}
	return nil
}

func (s *catalogService) ownsField(field models.Field) bool {
	for _, f := range s.store.Version().Fields() {
		if f == field {
			return true
		}
	}
	return false
}

func (s *catalogService) Edit(ctx context.Context, id int64) error {
	p, ok := s.store.Find(id)
	if !ok {
		return fmt.Errorf("edit product %d: %w", id, common.ErrorNotFound)
	}
	s.draft = models.DraftFromProduct(p, s.store.Version())
	s.errs = models.ValidationErrors{}
	s.editingID = id
	s.editing = true
	s.state = StateEditing
	s.log.Debug(ctx, "editing product", "id", id)
	return nil
}

func (s *catalogService) Cancel() {
	s.reset()
}

func (s *catalogService) reset() {
	s.draft = models.Draft{}
	s.errs = models.ValidationErrors{}
	s.editingID = 0
	s.editing = false
	s.state = StateIdle
}

// formState is where a rejected or failed submit returns to.
func (s *catalogService) formState() State {
	if s.editing {
		return StateEditing
	}
	return StateCreating
}

func (s *catalogService) Submit(ctx context.Context) (models.ValidationErrors, error) {
	s.state = StateValidating

	errs := s.validator.Validate(s.draft, s.store.Products(), s.editingID, s.editing)
	s.errs = errs
	s.ui.Validated(ctx, errs.Clone())

	if !errs.OK() {
		s.state = s.formState()
		s.log.Warn(ctx, "submission rejected", "fields", errs.Fields())
		s.notify(ctx, models.MsgRejected, models.SeverityDanger)
		return errs.Clone(), nil
	}

	var err error
	if s.editing {
		err = s.update(ctx)
	} else {
		err = s.create(ctx)
	}
	if err != nil {
		return models.ValidationErrors{}, err
	}

	s.reset()
	return models.ValidationErrors{}, nil
}

func (s *catalogService) create(ctx context.Context) error {
	p := models.Product{ID: s.store.NextID()}
	if err := s.validator.Apply(s.draft, &p); err != nil {
		s.state = s.formState()
		return fmt.Errorf("%w: coerce draft: %v", common.ErrorInternal, err)
	}

	if err := s.store.InsertFront(ctx, p); err != nil {
		s.state = s.formState()
		s.notify(ctx, MsgSaveFailed, models.SeverityDanger)
		return fmt.Errorf("create product: %w", err)
	}

	s.log.Info(ctx, "product created", "id", p.ID, "name", p.Name)
	s.ui.ProductsChanged(ctx, s.store.Products())
	s.notify(ctx, models.MsgCreated, models.SeveritySuccess)
	return nil
}

func (s *catalogService) update(ctx context.Context) error {
	id := s.editingID
	current, ok := s.store.Find(id)
	if !ok {
		s.log.Warn(ctx, "product under edit is gone", "id", id)
		s.reset()
		s.notify(ctx, models.MsgVanished, models.SeverityDanger)
		return fmt.Errorf("update product %d: %w", id, common.ErrorNotFound)
	}

	updated := current
	if err := s.validator.Apply(s.draft, &updated); err != nil {
		s.state = s.formState()
		return fmt.Errorf("%w: coerce draft: %v", common.ErrorInternal, err)
	}

	if _, err := s.store.Replace(ctx, id, func(p *models.Product) { *p = updated }); err != nil {
		s.state = s.formState()
		s.notify(ctx, MsgSaveFailed, models.SeverityDanger)
		return fmt.Errorf("update product %d: %w", id, err)
	}

	s.log.Info(ctx, "product updated", "id", id, "name", updated.Name)
	s.ui.ProductsChanged(ctx, s.store.Products())
	s.notify(ctx, models.MsgUpdated, models.SeverityPrimary)
	return nil
}

func (s *catalogService) Delete(ctx context.Context, id int64) (bool, error) {
	p, ok := s.store.Find(id)
	if !ok {
		return false, nil
	}

	if !s.ui.Confirm(ctx, fmt.Sprintf(`Delete product "%s"?`, p.Name)) {
		s.log.Debug(ctx, "deletion declined", "id", id)
		return false, nil
	}

	removed, err := s.store.Remove(ctx, id)
	if err != nil {
		s.notify(ctx, MsgSaveFailed, models.SeverityDanger)
		return false, fmt.Errorf("delete product %d: %w", id, err)
	}
	if !removed {
		return false, nil
	}

	// The form must not keep editing a record that no longer exists.
	if s.editing && s.editingID == id {
		s.reset()
	}

	s.log.Info(ctx, "product deleted", "id", id, "name", p.Name)
	s.ui.ProductsChanged(ctx, s.store.Products())
	s.notify(ctx, models.MsgDeleted, models.SeveritySuccess)
	return true, nil
}

func (s *catalogService) notify(ctx context.Context, msg string, severity models.Severity) {
	s.ui.Notify(ctx, models.Notification{Message: msg, Severity: severity, At: s.now()})
}
