package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/client"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/config"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/services"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/store"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/validation"
	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/google/uuid"
)

type App struct {
	config  *config.Config
	repos   *client.Repositories
	catalog services.CatalogService
	ui      *terminalPresenter
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the catalog for c. Reads from stdin stop once ctx is done.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	version, err := models.ParseVersion(c.ModelVersion)
	if err != nil {
		return nil, err
	}

	base, err := logging.NewTextLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := base.With("session_id", uuid.NewString())

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	reader := bufio.NewReader(newCancelableReader(ctx, os.Stdin))
	ui := newTerminalPresenter(reader, os.Stdout, version, isTerminal(int(os.Stdout.Fd())), c.NotificationTTL)
	st := store.New(repos.KV, version, log)
	catalog := services.NewCatalogService(st, validation.New(version, nil), ui, log)

	return &App{
		config:  c,
		repos:   repos,
		catalog: catalog,
		ui:      ui,
		log:     log,
		reader:  reader,
		out:     os.Stdout,
	}, nil
}

// Run loads the catalog and serves the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.repos.Close(); err != nil {
			a.log.Warn(ctx, "closing database", "error", err)
		}
	}()

	fmt.Fprintf(a.out, "Welcome to the product catalog (%s model, type 'help' for commands)\n", a.catalog.Version())

	if _, err := a.catalog.Load(ctx); err != nil {
		if errors.Is(err, common.ErrCorruptData) {
			fmt.Fprintf(a.out, "Stored products under %q are unreadable; refusing to start.\n", a.catalog.Version().StorageKey())
		}
		return err
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) status() string {
	s := string(a.catalog.Version())
	switch a.catalog.State() {
	case services.StateCreating:
		s += " new"
	case services.StateEditing:
		id, _ := a.catalog.EditingID()
		s += fmt.Sprintf(" edit #%d", id)
	}
	s = " (" + s + ")"
	if n := a.ui.status(); n != "" {
		s += " " + n
	}
	return s
}
