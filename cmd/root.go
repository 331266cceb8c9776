// Package cmd implements the warble command line interface.
package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/warble/internal/audio"
	"github.com/zjrosen/warble/internal/config"
	"github.com/zjrosen/warble/internal/host"
	"github.com/zjrosen/warble/internal/log"
	"github.com/zjrosen/warble/internal/pack"
	"github.com/zjrosen/warble/internal/router"
	"github.com/zjrosen/warble/internal/soundboard"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "warble",
	Short: "Voice-line sound effects for AI coding session events",
	Long: `Warble plays short voice lines in response to host lifecycle events:
session start, agent start/end, tool errors, and model changes. Events
arrive as JSON lines on stdin; the sound pack is picked from the active
model.

Example event lines:
  {"type":"session_start","session_id":"abc"}
  {"type":"model_select","model":{"id":"gpt-5-codex"}}
  {"type":"agent_start"}
  {"type":"mute_toggle"}
  {"type":"set_volume","value":"0.7"}`,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is "+filepath.Join(config.DefaultConfigDir(), "config.yaml")+")")
	rootCmd.PersistentFlags().String("packs-dir", "", "sound packs directory")
	rootCmd.PersistentFlags().Float64("volume", 0.5, "playback volume, 0.0-1.0")
	rootCmd.PersistentFlags().Bool("muted", false, "start muted")

	_ = viper.BindPFlag("packs_dir", rootCmd.PersistentFlags().Lookup("packs-dir"))
	_ = viper.BindPFlag("volume", rootCmd.PersistentFlags().Lookup("volume"))
	_ = viper.BindPFlag("muted", rootCmd.PersistentFlags().Lookup("muted"))
}

// initConfig loads configuration: defaults, then config file, then
// WARBLE_* environment variables, then flags.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.DefaultConfigDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WARBLE")
	viper.AutomaticEnv()

	// Register defaults with viper itself: Unmarshal includes bound
	// flag defaults (e.g. --packs-dir's ""), and only viper-level
	// defaults take precedence over those.
	cfg = config.Defaults()
	viper.SetDefault("packs_dir", cfg.PacksDir)
	viper.SetDefault("default_pack", cfg.DefaultPack)
	viper.SetDefault("volume", cfg.Volume)
	viper.SetDefault("muted", cfg.Muted)
	viper.SetDefault("burst.window", cfg.Burst.Window)
	viper.SetDefault("burst.threshold", cfg.Burst.Threshold)
	viper.SetDefault("status_clear_after", cfg.StatusClearAfter)
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is worth a note.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Warning: reading config:", err)
		}
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: parsing config:", err)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := log.Init(cfg.LogFile); err != nil {
		return err
	}
	defer log.Close()

	store := pack.NewStore(cfg.PacksDir)
	if err := store.Watch(); err != nil {
		// Without a watcher, manifest edits show up after the cache TTL.
		log.Debug(log.CatConfig, "pack watcher unavailable", "error", err)
	}
	defer store.Close()

	r := router.New(router.Options{
		Board: soundboard.New(store,
			soundboard.WithPack(cfg.DefaultPack),
			soundboard.WithVolume(cfg.Volume),
			soundboard.WithMuted(cfg.Muted),
		),
		Burst:            soundboard.NewBurstDetector(cfg.Burst.Window, cfg.Burst.Threshold),
		Player:           audio.NewSystemPlayer(),
		UI:               host.NewTerminalUI(cmd.OutOrStdout()),
		Store:            store,
		StatusClearAfter: cfg.StatusClearAfter,
	})

	return serve(r, cmd.InOrStdin())
}

// serve feeds JSON event lines from in to the router until EOF.
// Malformed lines are logged and skipped; nothing stops the loop short
// of the host closing the stream.
func serve(r *router.Router, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		event, err := parseEvent(line)
		if err != nil {
			log.Debug(log.CatRouter, "skipping malformed event", "error", err)
			continue
		}
		r.HandleEvent(event)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading events: %w", err)
	}
	return nil
}

// parseEvent decodes one wire event line.
func parseEvent(line []byte) (router.Event, error) {
	var event router.Event
	if err := json.Unmarshal(line, &event); err != nil {
		return router.Event{}, err
	}
	if event.Type == "" {
		return router.Event{}, fmt.Errorf("event has no type")
	}
	return event, nil
}
