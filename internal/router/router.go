// Package router subscribes the soundboard to host lifecycle events.
// It resolves the active pack from the current model, picks and plays
// voice lines per event, and forwards display text to the host UI.
// Every failure degrades to silence; nothing here returns an error
// that could take down the event loop.
package router

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/warble/internal/audio"
	"github.com/zjrosen/warble/internal/host"
	"github.com/zjrosen/warble/internal/log"
	"github.com/zjrosen/warble/internal/pack"
	"github.com/zjrosen/warble/internal/soundboard"
)

// StatusChannel is the logical host-UI channel all transient status
// text goes to.
const StatusChannel = "warble"

// Options wires a Router's collaborators.
type Options struct {
	Board  *soundboard.Board
	Burst  *soundboard.BurstDetector
	Player audio.Player
	UI     host.UI
	Store  *pack.Store

	// StatusClearAfter is how long status text stays visible.
	// Zero falls back to 4 seconds.
	StatusClearAfter time.Duration
}

// Router routes host events to the soundboard, audio player, and host
// UI. All mutating calls are expected to arrive sequentially from the
// host's single logical event thread.
type Router struct {
	board       *soundboard.Board
	burst       *soundboard.BurstDetector
	player      audio.Player
	ui          host.UI
	store       *pack.Store
	statusClear time.Duration
	sessionID   string
}

// New creates a Router. Nil Player or UI collaborators default to
// no-ops so a partially wired router stays safe.
func New(opts Options) *Router {
	player := opts.Player
	if player == nil {
		player = audio.NoopPlayer{}
	}
	ui := opts.UI
	if ui == nil {
		ui = host.NoopUI{}
	}
	statusClear := opts.StatusClearAfter
	if statusClear <= 0 {
		statusClear = 4 * time.Second
	}

	return &Router{
		board:       opts.Board,
		burst:       opts.Burst,
		player:      player,
		ui:          ui,
		store:       opts.Store,
		statusClear: statusClear,
		sessionID:   uuid.NewString(),
	}
}

// HandleEvent dispatches one host event. Unknown event types are
// ignored.
func (r *Router) HandleEvent(e Event) {
	switch e.Type {
	case EventModelSelect:
		r.syncPack(e.Model)

	case EventSessionStart:
		r.sessionID = e.SessionID
		if r.sessionID == "" {
			r.sessionID = uuid.NewString()
		}
		log.Info(log.CatRouter, "session started", "session", r.sessionID)
		r.syncPack(e.Model)
		r.playAndShow(pack.CategoryGreeting)

	case EventAgentStart:
		r.syncPack(e.Model)
		category := pack.CategoryAcknowledge
		if r.burst.Record() {
			category = pack.CategoryAnnoyed
		}
		r.playAndShow(category)

	case EventAgentEnd:
		r.playAndShow(pack.CategoryComplete)

	case EventToolResult:
		if e.IsError {
			r.playAndShow(pack.CategoryError)
		}

	case EventMuteToggle:
		r.ToggleMute()

	case EventSetVolume:
		// Command errors surface through the UI; the event loop never
		// sees them.
		_ = r.SetVolume(e.Value)

	default:
		log.Debug(log.CatRouter, "ignoring unknown event", "type", string(e.Type))
	}
}

// syncPack resolves the pack for the model and switches to it. A real
// switch surfaces a one-shot notification naming the new pack.
func (r *Router) syncPack(model *pack.ModelInfo) {
	packID := pack.ResolvePack(model)
	if !r.board.SwitchPack(packID) {
		return
	}

	log.Info(log.CatRouter, "switched pack", "pack", packID, "session", r.sessionID)
	name := packID
	if m, ok := r.store.Load(packID); ok && m.Name != "" {
		name = m.Name
	}
	r.ui.Notify(fmt.Sprintf("Sound pack: %s", name), host.SeverityInfo)
}

// playAndShow requests playback and, if a line was played, displays it
// as transient status.
func (r *Router) playAndShow(category pack.Category) {
	line, ok := r.RequestPlayback(category)
	if !ok {
		return
	}
	r.ui.SetStatus(StatusChannel, line, r.statusClear)
}

// RequestPlayback is the playback gate. When muted or no audio output
// exists, it returns immediately with no state touched at all.
// Otherwise it picks a sound, dispatches fire-and-forget playback at
// the current volume, and returns the line text for display. A missing
// asset file means "nothing to play": no playback, no line.
func (r *Router) RequestPlayback(category pack.Category) (string, bool) {
	if r.board.Muted() {
		return "", false
	}
	if !r.player.Available() {
		return "", false
	}

	entry, ok := r.board.Pick(category)
	if !ok {
		return "", false
	}

	path := r.store.AssetPath(r.board.CurrentPack(), entry.File)
	if _, err := os.Stat(path); err != nil {
		log.Debug(log.CatRouter, "asset missing", "path", path, "category", string(category))
		return "", false
	}

	r.player.Play(path, r.board.Volume())
	return entry.Line, true
}

// ToggleMute flips the mute state and tells the user where it landed.
func (r *Router) ToggleMute() {
	if r.board.ToggleMute() {
		r.ui.Notify("Warble muted", host.SeverityInfo)
		return
	}
	r.ui.Notify("Warble unmuted", host.SeverityInfo)
}

// SetVolume parses and applies a volume command argument. Invalid
// input is rejected with a visible message and the volume unchanged.
// On success a greeting plays as audible confirmation.
func (r *Router) SetVolume(input string) error {
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		r.ui.Notify(fmt.Sprintf("Invalid volume %q: expected a number between 0.0 and 1.0", input), host.SeverityError)
		return fmt.Errorf("parsing volume %q: %w", input, err)
	}

	if err := r.board.SetVolume(v); err != nil {
		r.ui.Notify(fmt.Sprintf("Volume %.2f out of range: expected 0.0 to 1.0", v), host.SeverityError)
		return err
	}

	r.ui.Notify(fmt.Sprintf("Volume set to %.2f", v), host.SeverityInfo)
	r.playAndShow(pack.CategoryGreeting)
	return nil
}

// SessionID returns the current session identifier.
func (r *Router) SessionID() string {
	return r.sessionID
}
