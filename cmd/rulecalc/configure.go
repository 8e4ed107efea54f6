package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/copteruni/rulecalc/internal/config"
	"github.com/copteruni/rulecalc/internal/solver"
)

func newConfigureCmd() *cobra.Command {
	var defaultLock string
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Choose the default lock mode",
		Long: "Configure asks for the lock mode used when the calculator starts\n" +
			"and saves it to ~/.rulecalc/config.json. Pass --default-lock to skip the form.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrDefault()
			if err != nil {
				return err
			}
			if strings.TrimSpace(defaultLock) == "" {
				defaultLock, err = promptDefaultLock(cfg.DefaultLock)
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "Configuration cancelled")
					return nil
				}
				if err != nil {
					return err
				}
			}
			return saveDefaultLock(cmd.OutOrStdout(), cfg, defaultLock)
		},
	}
	cmd.Flags().StringVar(&defaultLock, "default-lock", "", "lock mode to save without prompting (angle|height)")
	return cmd
}

func promptDefaultLock(current string) (string, error) {
	lock := current
	if lock == "" {
		lock = solver.DefaultLockMode.String()
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default lock").
				Description("The locked value is never overwritten when all three are filled.").
				Options(
					huh.NewOption("Camera angle", solver.AngleLocked.String()),
					huh.NewOption("Drone height", solver.HeightLocked.String()),
				).
				Value(&lock),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("configure form: %w", err)
	}
	return lock, nil
}

func saveDefaultLock(w io.Writer, cfg config.Config, lock string) error {
	mode, err := solver.ParseLockMode(lock)
	if err != nil {
		return fmt.Errorf("--default-lock: %w", err)
	}
	cfg.DefaultLock = mode.String()
	if err := config.Save(cfg); err != nil {
		return err
	}
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Default lock set to %s (%s)\n", mode, path)
	return nil
}
