package router

import "github.com/zjrosen/warble/internal/pack"

// EventType identifies a host lifecycle event or user command on the
// wire.
type EventType string

const (
	// Lifecycle events delivered by the host.
	EventSessionStart EventType = "session_start"
	EventAgentStart   EventType = "agent_start"
	EventAgentEnd     EventType = "agent_end"
	EventToolResult   EventType = "tool_result"
	EventModelSelect  EventType = "model_select"

	// User commands.
	EventMuteToggle EventType = "mute_toggle"
	EventSetVolume  EventType = "set_volume"
)

// Event is one host event or command. Fields beyond Type are optional
// and event-specific.
type Event struct {
	Type      EventType       `json:"type"`
	SessionID string          `json:"session_id,omitempty"`
	Model     *pack.ModelInfo `json:"model,omitempty"`

	// IsError marks a failed tool result.
	IsError bool `json:"is_error,omitempty"`

	// Value carries the set_volume argument, e.g. "0.7".
	Value string `json:"value,omitempty"`
}
