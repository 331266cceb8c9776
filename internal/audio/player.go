// Package audio plays sound files via OS-native audio commands.
// Playback is fire-and-forget: errors are logged and swallowed, never
// returned to the caller.
package audio

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"sync/atomic"

	"github.com/zjrosen/warble/internal/log"
)

// Player dispatches playback of an audio file at a volume in [0, 1].
// Implementations handle all errors internally.
type Player interface {
	// Play starts playback of the file asynchronously. volume is a
	// gain in [0, 1]; players without volume support ignore it.
	Play(path string, volume float64)

	// Available reports whether this platform can play audio at all.
	Available() bool
}

// NoopPlayer is a Player that does nothing. Safe default when audio is
// unavailable or suppressed.
type NoopPlayer struct{}

// Play does nothing.
func (NoopPlayer) Play(string, float64) {}

// Available reports false.
func (NoopPlayer) Available() bool { return false }

// maxConcurrentSounds limits simultaneous playback to prevent audio overload.
const maxConcurrentSounds = 2

// SystemPlayer shells out to the platform's audio command: afplay on
// macOS, paplay or aplay on Linux, PowerShell's SoundPlayer on Windows.
type SystemPlayer struct {
	command    string
	baseArgs   []string
	available  bool
	concurrent atomic.Int32
}

// NewSystemPlayer detects the platform audio command. On platforms
// without one, the returned player reports unavailable and every Play
// is a no-op.
func NewSystemPlayer() *SystemPlayer {
	cmd, args := detectAudioCommand()
	available := cmd != ""

	log.Debug(log.CatAudio, "audio player initialized",
		"available", available,
		"command", cmd,
		"platform", runtime.GOOS,
	)

	return &SystemPlayer{
		command:   cmd,
		baseArgs:  args,
		available: available,
	}
}

// Available reports whether an audio command was detected.
func (p *SystemPlayer) Available() bool {
	return p.available
}

// Play starts playback of the file in a background goroutine. The
// caller never observes the result; failures are logged at debug and
// dropped. Playback is skipped when no audio command is available or
// the concurrent-playback limit is reached.
func (p *SystemPlayer) Play(path string, volume float64) {
	if !p.available {
		log.Debug(log.CatAudio, "no audio player available", "path", path)
		return
	}

	if p.concurrent.Add(1) > maxConcurrentSounds {
		p.concurrent.Add(-1)
		log.Debug(log.CatAudio, "concurrent sound limit reached", "path", path)
		return
	}

	go p.playAsync(path, volume)
}

func (p *SystemPlayer) playAsync(path string, volume float64) {
	defer p.concurrent.Add(-1)

	args := p.buildArgs(path, volume)
	cmd := exec.Command(p.command, args...) //nolint:gosec // command resolved via LookPath at construction
	if err := cmd.Run(); err != nil {
		log.Debug(log.CatAudio, "playback failed", "path", path, "error", err)
	}
}

// buildArgs constructs player arguments, folding the volume in where
// the player supports it. Returns a fresh slice each call.
func (p *SystemPlayer) buildArgs(path string, volume float64) []string {
	if runtime.GOOS == "windows" {
		// PowerShell needs the path interpolated into the command;
		// SoundPlayer has no volume control.
		return []string{"-c", fmt.Sprintf("(New-Object System.Media.SoundPlayer '%s').PlaySync()", path)}
	}

	args := make([]string, 0, len(p.baseArgs)+3)
	args = append(args, p.baseArgs...)

	switch commandName(p.command) {
	case "afplay":
		// afplay takes a linear gain.
		args = append(args, "-v", strconv.FormatFloat(volume, 'f', 2, 64))
	case "paplay":
		// paplay volume is 0..65536.
		args = append(args, fmt.Sprintf("--volume=%d", int(volume*65536)))
	}
	// aplay has no volume flag; it plays at system volume.

	return append(args, path)
}

// detectAudioCommand returns the audio command and base arguments for
// the current platform, or an empty command if none is installed.
func detectAudioCommand() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		if path, err := exec.LookPath("afplay"); err == nil {
			return path, nil
		}
	case "linux":
		if path, err := exec.LookPath("paplay"); err == nil {
			return path, nil
		}
		if path, err := exec.LookPath("aplay"); err == nil {
			return path, []string{"-q"}
		}
	case "windows":
		if path, err := exec.LookPath("powershell.exe"); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// commandName extracts the bare command name from a resolved path.
func commandName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}
