package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestTerminalPresenter_NotifyPlainAndColored(t *testing.T) {
	n := models.Notification{Message: models.MsgCreated, Severity: models.SeveritySuccess, At: time.Now()}

	var plain bytes.Buffer
	newTerminalPresenter(rdr(""), &plain, models.VersionFull, false, time.Second).Notify(context.Background(), n)
	assert.Equal(t, "[success] Product added successfully.\n", plain.String())

	var colored bytes.Buffer
	newTerminalPresenter(rdr(""), &colored, models.VersionFull, true, time.Second).Notify(context.Background(), n)
	assert.Equal(t, "\x1b[32m[success] Product added successfully.\x1b[0m\n", colored.String())
}

func TestTerminalPresenter_StatusExpires(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	now := start

	var out bytes.Buffer
	p := newTerminalPresenter(rdr(""), &out, models.VersionBasic, false, 3*time.Second)
	p.now = func() time.Time { return now }

	assert.Empty(t, p.status())

	p.Notify(context.Background(), models.Notification{Message: models.MsgDeleted, Severity: models.SeveritySuccess, At: start})
	now = start.Add(2 * time.Second)
	assert.Equal(t, "[success] Product deleted successfully.", p.status())

	now = start.Add(3 * time.Second)
	assert.Empty(t, p.status())
}

func TestTerminalPresenter_Confirm(t *testing.T) {
	var out bytes.Buffer
	p := newTerminalPresenter(rdr("y\nn\n"), &out, models.VersionBasic, false, time.Second)

	assert.True(t, p.Confirm(context.Background(), "Delete?"))
	assert.False(t, p.Confirm(context.Background(), "Delete?"))
	assert.False(t, p.Confirm(context.Background(), "Delete?"), "EOF declines")
}

func TestTerminalPresenter_Validated(t *testing.T) {
	var out bytes.Buffer
	p := newTerminalPresenter(rdr(""), &out, models.VersionFull, false, time.Second)

	p.Validated(context.Background(), models.ValidationErrors{
		models.FieldStock: "Stock cannot be negative.",
		models.FieldName:  "Name is required.",
	})
	assert.Equal(t, "  name: Name is required.\n  stock: Stock cannot be negative.\n", out.String())
}
