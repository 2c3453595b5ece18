package models

import "time"

// Severity classifies a notification for the presentation layer.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityPrimary Severity = "primary"
	SeverityDanger  Severity = "danger"
)

// User-facing messages.
const (
	MsgCreated  = "Product added successfully."
	MsgUpdated  = "Product updated successfully."
	MsgDeleted  = "Product deleted successfully."
	MsgRejected = "Please check your input."
	MsgVanished = "The product being edited no longer exists."
)

// Notification is a message for the user with its severity.
type Notification struct {
	Message  string
	Severity Severity
	At       time.Time
}

// Expired reports whether n is older than ttl at now.
func (n Notification) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(n.At) >= ttl
}
