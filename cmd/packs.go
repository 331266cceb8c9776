package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/warble/internal/pack"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List installed sound packs",
	Long:  `Display the sound packs installed in the packs directory, with the number of voice lines each provides per category.`,
	RunE:  runPacks,
}

func init() {
	rootCmd.AddCommand(packsCmd)
}

var (
	packHeaderStyle = lipgloss.NewStyle().Bold(true)
	packIDStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	packDimStyle    = lipgloss.NewStyle().Faint(true)
)

func runPacks(cmd *cobra.Command, args []string) error {
	store := pack.NewStore(cfg.PacksDir)
	out := cmd.OutOrStdout()

	ids := store.Packs()
	fmt.Fprintln(out, packHeaderStyle.Render(fmt.Sprintf("Sound packs in %s:", store.Dir())))
	if len(ids) == 0 {
		fmt.Fprintln(out, packDimStyle.Render("  (none — run 'warble init' and add packs to the packs directory)"))
		return nil
	}

	for _, id := range ids {
		manifest, ok := store.Load(id)
		if !ok {
			continue
		}

		marker := " "
		if id == cfg.DefaultPack {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s  %s\n", marker, packIDStyle.Render(id), manifest.Name)
		for _, category := range pack.Categories() {
			if n := len(manifest.Entries(category)); n > 0 {
				fmt.Fprintf(out, "    %-12s %d\n", category, n)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, packDimStyle.Render("* default pack"))
	return nil
}
