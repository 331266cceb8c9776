package soundboard

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/warble/internal/pack"
)

// newTestStore builds a packs dir containing a "peon" pack with two
// greetings, one annoyed line, and no error sounds.
func newTestStore(t *testing.T) *pack.Store {
	t.Helper()
	dir := t.TempDir()
	packDir := filepath.Join(dir, "peon")
	require.NoError(t, os.MkdirAll(packDir, 0755))
	manifest := `{
		"id": "peon",
		"name": "Peon",
		"sounds": {
			"greeting": [
				{"file": "ready.wav", "line": "Ready to work?"},
				{"file": "yes.wav", "line": "Yes?"}
			],
			"annoyed": [
				{"file": "leave.wav", "line": "Leave me alone!"}
			]
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(packDir, pack.ManifestFile), []byte(manifest), 0644))
	return pack.NewStore(dir)
}

// ===========================================================================
// Constructor
// ===========================================================================

func TestNew_Defaults(t *testing.T) {
	board := New(newTestStore(t))

	require.Equal(t, pack.DefaultPack, board.CurrentPack())
	require.False(t, board.Muted())
	require.InDelta(t, 0.5, board.Volume(), 1e-9)
}

func TestNew_Options(t *testing.T) {
	board := New(newTestStore(t), WithPack("human"), WithVolume(0.8), WithMuted(true))

	require.Equal(t, "human", board.CurrentPack())
	require.True(t, board.Muted())
	require.InDelta(t, 0.8, board.Volume(), 1e-9)
}

// ===========================================================================
// Pick
// ===========================================================================

func TestBoard_Pick_NeverRepeatsWithAlternatives(t *testing.T) {
	board := New(newTestStore(t))

	var previous string
	for i := range 50 {
		entry, ok := board.Pick(pack.CategoryGreeting)
		require.True(t, ok)
		require.Contains(t, []string{"ready.wav", "yes.wav"}, entry.File)
		if i > 0 {
			require.NotEqual(t, previous, entry.File, "same file twice in a row at trial %d", i)
		}
		previous = entry.File
	}
}

func TestBoard_Pick_SingleSoundRepeats(t *testing.T) {
	board := New(newTestStore(t))

	for range 10 {
		entry, ok := board.Pick(pack.CategoryAnnoyed)
		require.True(t, ok)
		require.Equal(t, "leave.wav", entry.File)
		require.Equal(t, "Leave me alone!", entry.Line)
	}
}

func TestBoard_Pick_MissingManifest(t *testing.T) {
	board := New(pack.NewStore(filepath.Join(t.TempDir(), "nope")))

	_, ok := board.Pick(pack.CategoryGreeting)
	require.False(t, ok)
}

func TestBoard_Pick_AbsentCategory(t *testing.T) {
	board := New(newTestStore(t))

	_, ok := board.Pick(pack.CategoryError)
	require.False(t, ok)
}

func TestBoard_Pick_StaleLastPlayedFiltersNothing(t *testing.T) {
	// Deterministic picks: always choose index 0.
	board := New(newTestStore(t), WithIntN(func(int) int { return 0 }))

	// Seed history with a file that is not in the manifest.
	_, ok := board.Pick(pack.CategoryGreeting)
	require.True(t, ok)
	board.lastPlayed[pack.CategoryGreeting] = "gone.wav"

	entry, ok := board.Pick(pack.CategoryGreeting)
	require.True(t, ok)
	require.Equal(t, "ready.wav", entry.File, "full list stays eligible when history is stale")
}

// TestProperty_AntiRepeat verifies the anti-repeat rule for packs of
// varying sizes: with at least two sounds in a category, consecutive
// picks never return the same file, and every pick is a member of the
// manifest's sound list.
func TestProperty_AntiRepeat(t *testing.T) {
	// Pre-build packs with 2..6 greeting sounds; rapid draws which pack
	// to exercise and how long the pick sequence runs.
	dir := t.TempDir()
	files := make(map[int][]string)
	for n := 2; n <= 6; n++ {
		id := fmt.Sprintf("pack%d", n)
		packDir := filepath.Join(dir, id)
		require.NoError(t, os.MkdirAll(packDir, 0755))

		var entries []string
		for i := range n {
			file := fmt.Sprintf("line%d.wav", i)
			files[n] = append(files[n], file)
			entries = append(entries, fmt.Sprintf(`{"file": %q, "line": "line %d"}`, file, i))
		}
		manifest := fmt.Sprintf(`{"id": %q, "name": %q, "sounds": {"greeting": [%s]}}`,
			id, id, strings.Join(entries, ","))
		require.NoError(t, os.WriteFile(filepath.Join(packDir, pack.ManifestFile), []byte(manifest), 0644))
	}
	store := pack.NewStore(dir)

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(t, "numSounds")
		picks := rapid.IntRange(2, 60).Draw(t, "numPicks")

		board := New(store, WithPack(fmt.Sprintf("pack%d", n)))

		var previous string
		for i := range picks {
			entry, ok := board.Pick(pack.CategoryGreeting)
			if !ok {
				t.Fatalf("pick %d failed", i)
			}
			if !slices.Contains(files[n], entry.File) {
				t.Fatalf("pick %d returned %q, not in manifest", i, entry.File)
			}
			if i > 0 && entry.File == previous {
				t.Fatalf("pick %d repeated %q", i, entry.File)
			}
			previous = entry.File
		}
	})
}

// ===========================================================================
// SwitchPack
// ===========================================================================

func TestBoard_SwitchPack(t *testing.T) {
	t.Run("same pack is a no-op and keeps history", func(t *testing.T) {
		board := New(newTestStore(t))
		_, ok := board.Pick(pack.CategoryGreeting)
		require.True(t, ok)
		last := board.lastPlayed[pack.CategoryGreeting]

		require.False(t, board.SwitchPack(pack.DefaultPack))
		require.Equal(t, last, board.lastPlayed[pack.CategoryGreeting])
	})

	t.Run("different pack clears history", func(t *testing.T) {
		board := New(newTestStore(t))
		_, ok := board.Pick(pack.CategoryGreeting)
		require.True(t, ok)
		require.NotEmpty(t, board.lastPlayed)

		require.True(t, board.SwitchPack("human"))
		require.Equal(t, "human", board.CurrentPack())
		require.Empty(t, board.lastPlayed)
	})
}

// ===========================================================================
// Mute / Volume
// ===========================================================================

func TestBoard_ToggleMute(t *testing.T) {
	board := New(newTestStore(t))

	require.True(t, board.ToggleMute())
	require.True(t, board.Muted())
	require.False(t, board.ToggleMute())
	require.False(t, board.Muted())
}

func TestBoard_SetVolume(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		wantErr  bool
		expected float64
	}{
		{"valid middle", 0.5, false, 0.5},
		{"lower bound", 0.0, false, 0.0},
		{"upper bound", 1.0, false, 1.0},
		{"too high", 1.5, true, 0.5},
		{"negative", -0.1, true, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := New(newTestStore(t))
			err := board.SetVolume(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrVolumeOutOfRange)
			} else {
				require.NoError(t, err)
			}
			require.InDelta(t, tt.expected, board.Volume(), 1e-9)
		})
	}
}
