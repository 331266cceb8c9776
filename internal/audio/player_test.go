package audio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopPlayer(t *testing.T) {
	var p Player = NoopPlayer{}
	require.False(t, p.Available())
	// Must be safe to call regardless of input.
	p.Play("", 0)
	p.Play("/does/not/exist.wav", 2.0)
}

func TestSystemPlayer_BuildArgs_Afplay(t *testing.T) {
	p := &SystemPlayer{command: "/usr/bin/afplay", available: true}

	args := p.buildArgs("/tmp/ready.wav", 0.5)
	require.Equal(t, []string{"-v", "0.50", "/tmp/ready.wav"}, args)
}

func TestSystemPlayer_BuildArgs_Paplay(t *testing.T) {
	p := &SystemPlayer{command: "/usr/bin/paplay", available: true}

	args := p.buildArgs("/tmp/ready.wav", 0.5)
	require.Equal(t, []string{"--volume=32768", "/tmp/ready.wav"}, args)
}

func TestSystemPlayer_BuildArgs_AplayHasNoVolume(t *testing.T) {
	p := &SystemPlayer{command: "/usr/bin/aplay", baseArgs: []string{"-q"}, available: true}

	args := p.buildArgs("/tmp/ready.wav", 0.5)
	require.Equal(t, []string{"-q", "/tmp/ready.wav"}, args)
	require.NotContains(t, strings.Join(args, " "), "volume")
}

func TestSystemPlayer_BuildArgs_FreshSlice(t *testing.T) {
	// Each call must build a new slice; shared backing arrays race
	// between concurrent playbacks.
	p := &SystemPlayer{command: "/usr/bin/aplay", baseArgs: []string{"-q"}, available: true}

	first := p.buildArgs("/tmp/a.wav", 0.5)
	second := p.buildArgs("/tmp/b.wav", 0.5)
	require.Equal(t, "/tmp/a.wav", first[len(first)-1])
	require.Equal(t, "/tmp/b.wav", second[len(second)-1])
}

func TestSystemPlayer_UnavailableIsNoop(t *testing.T) {
	p := &SystemPlayer{available: false}
	require.False(t, p.Available())
	p.Play("/tmp/ready.wav", 0.5)
	require.Equal(t, int32(0), p.concurrent.Load())
}

func TestCommandName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/usr/bin/afplay", "afplay"},
		{"afplay", "afplay"},
		{`C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`, "powershell.exe"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, commandName(tt.path))
		})
	}
}
