package host

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	infoStyle   = lipgloss.NewStyle().Bold(true)
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// TerminalUI renders status and notifications as styled lines on a
// writer. It stands in for a real host UI when warble runs from a
// plain terminal; "clearing" a printed line is meaningless, so the
// clear delay is ignored.
type TerminalUI struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminalUI creates a TerminalUI writing to out.
func NewTerminalUI(out io.Writer) *TerminalUI {
	return &TerminalUI{out: out}
}

// SetStatus prints the status text prefixed with its channel.
func (u *TerminalUI) SetStatus(channel, text string, _ time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintln(u.out, statusStyle.Render(fmt.Sprintf("[%s] %s", channel, text)))
}

// Notify prints the message styled by severity.
func (u *TerminalUI) Notify(message string, severity Severity) {
	style := infoStyle
	switch severity {
	case SeverityWarn:
		style = warnStyle
	case SeverityError:
		style = errorStyle
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintln(u.out, style.Render(message))
}
