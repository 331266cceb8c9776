// Package soundboard holds the process-lifetime sound state: the
// active pack, anti-repeat bookkeeping, mute and volume, and the
// rapid-usage burst detector. All state is single-writer by
// construction; the host delivers events sequentially.
package soundboard

import (
	"errors"
	"math/rand/v2"

	"github.com/zjrosen/warble/internal/pack"
)

// ErrVolumeOutOfRange is returned by SetVolume for values outside [0, 1].
var ErrVolumeOutOfRange = errors.New("volume must be between 0.0 and 1.0")

// Board is the selection engine plus its mutable state. Construct one
// per process with New; there are no package-level singletons.
type Board struct {
	store *pack.Store
	intn  func(n int) int

	currentPack string
	lastPlayed  map[pack.Category]string
	muted       bool
	volume      float64
}

// Option configures a Board.
type Option func(*Board)

// WithIntN replaces the random source used for selection. The function
// must return a value in [0, n). Used by tests for deterministic picks.
func WithIntN(intn func(n int) int) Option {
	return func(b *Board) { b.intn = intn }
}

// WithPack sets the initial active pack id.
func WithPack(id string) Option {
	return func(b *Board) { b.currentPack = id }
}

// WithVolume sets the initial volume. Out-of-range values are
// ignored, leaving the default in place.
func WithVolume(v float64) Option {
	return func(b *Board) {
		if v >= 0.0 && v <= 1.0 {
			b.volume = v
		}
	}
}

// WithMuted sets the initial mute state.
func WithMuted(muted bool) Option {
	return func(b *Board) { b.muted = muted }
}

// New creates a Board with defaults: default pack, unmuted, volume 0.5,
// no selection history.
func New(store *pack.Store, opts ...Option) *Board {
	b := &Board{
		store:       store,
		intn:        rand.IntN,
		currentPack: pack.DefaultPack,
		lastPlayed:  make(map[pack.Category]string),
		volume:      0.5,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CurrentPack returns the active pack id.
func (b *Board) CurrentPack() string {
	return b.currentPack
}

// SwitchPack activates a different pack and reports whether a switch
// happened. Switching clears the anti-repeat history; switching to the
// already-active pack is a no-op. This is the only way the history is
// reset.
func (b *Board) SwitchPack(packID string) bool {
	if packID == b.currentPack {
		return false
	}
	b.currentPack = packID
	b.lastPlayed = make(map[pack.Category]string)
	return true
}

// Pick selects a sound for the category from the active pack and
// records it as last played. Returns false when the pack manifest is
// unavailable or the category has no sounds.
//
// When the category has two or more sounds, the previously picked file
// is excluded, so the same line never plays twice in a row. A single
// sound repeats unavoidably.
func (b *Board) Pick(category pack.Category) (pack.SoundEntry, bool) {
	manifest, ok := b.store.Load(b.currentPack)
	if !ok {
		return pack.SoundEntry{}, false
	}

	entries := manifest.Entries(category)
	if len(entries) == 0 {
		return pack.SoundEntry{}, false
	}

	candidates := entries
	if len(entries) > 1 {
		if last, played := b.lastPlayed[category]; played {
			filtered := make([]pack.SoundEntry, 0, len(entries))
			for _, entry := range entries {
				if entry.File != last {
					filtered = append(filtered, entry)
				}
			}
			// A stale last-played file filters nothing out; the full
			// list stays eligible.
			if len(filtered) > 0 {
				candidates = filtered
			}
		}
	}

	selected := candidates[b.intn(len(candidates))]
	b.lastPlayed[category] = selected.File
	return selected, true
}

// Muted reports the current mute state.
func (b *Board) Muted() bool {
	return b.muted
}

// ToggleMute flips the mute state and returns the new value.
func (b *Board) ToggleMute() bool {
	b.muted = !b.muted
	return b.muted
}

// Volume returns the current volume in [0, 1].
func (b *Board) Volume() float64 {
	return b.volume
}

// SetVolume updates the volume. Values outside [0, 1] (including NaN)
// are rejected and the previous volume is retained.
func (b *Board) SetVolume(v float64) error {
	if !(v >= 0.0 && v <= 1.0) {
		return ErrVolumeOutOfRange
	}
	b.volume = v
	return nil
}
