package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/warble/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Write a commented default configuration to the warble config directory and create the packs directory.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := filepath.Join(config.DefaultConfigDir(), "config.yaml")

	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath)
	}

	if err := config.WriteDefaultConfig(configPath); err != nil {
		return err
	}
	if err := os.MkdirAll(config.DefaultPacksDir(), 0750); err != nil {
		return fmt.Errorf("creating packs directory: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Created", configPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Add sound packs under", config.DefaultPacksDir())
	return nil
}
