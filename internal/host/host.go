// Package host defines the contract with the host application's UI:
// a channel-keyed transient status line and one-shot notifications.
// The router only needs these two calls; rendering mechanics belong to
// the host.
package host

import "time"

// Severity classifies a notification.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// UI is the host-side display collaborator.
//
// SetStatus shows transient text on a logical channel; implementations
// clear it after clearAfter. Overlapping requests on the same channel
// may race to clear each other's text. That is cosmetic only and
// accepted: a newer status simply overwrites an older one, and an
// older delayed clear may fire afterwards.
type UI interface {
	SetStatus(channel, text string, clearAfter time.Duration)
	Notify(message string, severity Severity)
}

// NoopUI discards all display requests.
type NoopUI struct{}

// SetStatus does nothing.
func (NoopUI) SetStatus(string, string, time.Duration) {}

// Notify does nothing.
func (NoopUI) Notify(string, Severity) {}
