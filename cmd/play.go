package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/warble/internal/audio"
	"github.com/zjrosen/warble/internal/host"
	"github.com/zjrosen/warble/internal/pack"
	"github.com/zjrosen/warble/internal/router"
	"github.com/zjrosen/warble/internal/soundboard"
)

var (
	playPack string
	playWait time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play <category>",
	Short: "Play one sound from a category",
	Long: `Play a single voice line from the given category, for testing a pack.
Valid categories: ` + categoryList() + `.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playPack, "pack", "", "pack to play from (default: configured default pack)")
	playCmd.Flags().DurationVar(&playWait, "wait", 2*time.Second, "how long to wait for playback to finish")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	category := pack.Category(args[0])
	if !category.Valid() {
		return fmt.Errorf("unknown category %q (valid: %s)", args[0], categoryList())
	}

	packID := playPack
	if packID == "" {
		packID = cfg.DefaultPack
	}

	store := pack.NewStore(cfg.PacksDir)
	r := router.New(router.Options{
		Board: soundboard.New(store,
			soundboard.WithPack(packID),
			soundboard.WithVolume(cfg.Volume),
		),
		Burst:  soundboard.NewBurstDetector(cfg.Burst.Window, cfg.Burst.Threshold),
		Player: audio.NewSystemPlayer(),
		UI:     host.NewTerminalUI(cmd.OutOrStdout()),
		Store:  store,
	})

	line, ok := r.RequestPlayback(category)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing to play for %q in pack %q\n", category, packID)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), line)
	// Playback is fire-and-forget; give the player process a moment
	// before the command exits.
	time.Sleep(playWait)
	return nil
}

func categoryList() string {
	names := make([]string, 0, len(pack.Categories()))
	for _, c := range pack.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
