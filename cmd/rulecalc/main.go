package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/copteruni/rulecalc/internal/app"
	"github.com/copteruni/rulecalc/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var cliLog = logging.New("cli")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		lock    string
		noWatch bool
	)
	cmd := &cobra.Command{
		Use:   "rulecalc",
		Short: "Check drone camera shots against the 1:1 rule",
		Long: "rulecalc keeps camera angle, drone height and horizontal distance\n" +
			"consistent and reports whether the distance is at least the height.\n\n" +
			"Without a subcommand it opens the interactive calculator.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(app.Options{Lock: lock, WatchConfig: !noWatch})
		},
	}
	cmd.Flags().StringVar(&lock, "lock", "", "lock mode for this session (angle|height)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload config.json while running")

	cmd.AddCommand(newSolveCmd(), newConfigureCmd())
	return cmd
}

func runTUI(opts app.Options) error {
	m, err := app.New(opts)
	if err != nil {
		return err
	}
	defer m.Close()

	cliLog.Debug("starting calculator", "lock", m.Lock(), "watch_config", opts.WatchConfig)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		cliLog.Error("calculator exited", "error", err)
		return err
	}
	return nil
}
