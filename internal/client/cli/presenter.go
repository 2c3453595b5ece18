package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/services"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

const ansiReset = "\x1b[0m"

var severityColor = map[models.Severity]string{
	models.SeveritySuccess: "\x1b[32m",
	models.SeverityPrimary: "\x1b[34m",
	models.SeverityDanger:  "\x1b[31m",
}

// terminalPresenter renders catalog events as text. It remembers the latest
// notification so the prompt can repeat it until it expires.
type terminalPresenter struct {
	in      *bufio.Reader
	out     io.Writer
	version models.Version
	color   bool
	ttl     time.Duration
	now     func() time.Time

	mu   sync.Mutex
	last *models.Notification
}

var _ services.Presenter = (*terminalPresenter)(nil)

func newTerminalPresenter(in *bufio.Reader, out io.Writer, v models.Version, color bool, ttl time.Duration) *terminalPresenter {
	return &terminalPresenter{in: in, out: out, version: v, color: color, ttl: ttl, now: time.Now}
}

func (p *terminalPresenter) format(n models.Notification) string {
	s := fmt.Sprintf("[%s] %s", n.Severity, n.Message)
	if c, ok := severityColor[n.Severity]; ok && p.color {
		s = c + s + ansiReset
	}
	return s
}

func (p *terminalPresenter) Notify(_ context.Context, n models.Notification) {
	p.mu.Lock()
	p.last = &n
	p.mu.Unlock()
	fmt.Fprintln(p.out, p.format(n))
}

func (p *terminalPresenter) ProductsChanged(_ context.Context, products []models.Product) {
	_ = renderProducts(p.out, products, p.version)
}

func (p *terminalPresenter) Validated(_ context.Context, errs models.ValidationErrors) {
	renderErrors(p.out, errs)
}

func (p *terminalPresenter) Confirm(_ context.Context, question string) bool {
	ok, err := GetConfirmation(p.in, question, p.out)
	return err == nil && ok
}

// status returns the latest notification while it is still fresh, or "".
func (p *terminalPresenter) status() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return ""
	}
	if p.last.Expired(p.now(), p.ttl) {
		p.last = nil
		return ""
	}
	return p.format(*p.last)
}
