package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/copteruni/rulecalc/internal/config"
	"github.com/copteruni/rulecalc/internal/solver"
)

type solveOptions struct {
	angle    string
	height   string
	distance string
	changed  string
	lock     string
	output   string
}

// solveResult is the machine-readable output of the solve command. Absent
// fields are null.
type solveResult struct {
	Angle      *float64 `json:"angle" yaml:"angle"`
	Height     *float64 `json:"height" yaml:"height"`
	Distance   *float64 `json:"distance" yaml:"distance"`
	Lock       string   `json:"lock" yaml:"lock"`
	Solved     string   `json:"solved,omitempty" yaml:"solved,omitempty"`
	Compliance string   `json:"compliance" yaml:"compliance"`
	Deficit    *float64 `json:"deficit,omitempty" yaml:"deficit,omitempty"`
}

func newSolveCmd() *cobra.Command {
	var opts solveOptions
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one set of values without the interactive UI",
		Long: "Solve fills in the missing value from the two given ones, or\n" +
			"recomputes the dependent value after --changed when all three are given.\n" +
			"Values are read like form input: \"12m\" is 12, an empty value is absent.",
		Example: "  rulecalc solve --angle 60 --height 12\n" +
			"  rulecalc solve --angle 45 --height 12 --distance 30 --changed height --output json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.angle, "angle", "", "camera angle in degrees")
	f.StringVar(&opts.height, "height", "", "drone height in meters")
	f.StringVar(&opts.distance, "distance", "", "horizontal distance in meters")
	f.StringVar(&opts.changed, "changed", "", "field that was edited last (angle|height|distance)")
	f.StringVar(&opts.lock, "lock", "", "lock mode (angle|height); defaults to the configured mode")
	f.StringVarP(&opts.output, "output", "o", "text", "output format (text|json|yaml)")
	return cmd
}

func runSolve(w io.Writer, opts solveOptions) error {
	lock, err := solveLockMode(opts.lock)
	if err != nil {
		return err
	}
	changed, err := solver.ParseField(opts.changed)
	if err != nil {
		return fmt.Errorf("--changed: %w", err)
	}

	obs := solver.Observations{
		Angle:    solver.ParseValue(opts.angle),
		Height:   solver.ParseValue(opts.height),
		Distance: solver.ParseValue(opts.distance),
	}
	plan := solver.OnFieldChanged(changed, obs, lock)
	res := newSolveResult(plan.Apply(obs), plan, lock)
	cliLog.Debug("solved", "changed", changed, "solved", plan.Solved, "lock", lock, "compliance", plan.Status.Kind)

	switch strings.ToLower(strings.TrimSpace(opts.output)) {
	case "", "text":
		return writeSolveText(w, res)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", opts.output)
}

// solveLockMode uses the flag when given and the configured default lock
// otherwise.
func solveLockMode(flag string) (solver.LockMode, error) {
	if strings.TrimSpace(flag) != "" {
		lock, err := solver.ParseLockMode(flag)
		if err != nil {
			return lock, fmt.Errorf("--lock: %w", err)
		}
		return lock, nil
	}
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return solver.DefaultLockMode, err
	}
	return cfg.LockMode()
}

func newSolveResult(obs solver.Observations, plan solver.Plan, lock solver.LockMode) solveResult {
	ptr := func(v solver.Value) *float64 {
		n, ok := v.Get()
		if !ok {
			return nil
		}
		return &n
	}
	res := solveResult{
		Angle:      ptr(obs.Angle),
		Height:     ptr(obs.Height),
		Distance:   ptr(obs.Distance),
		Lock:       lock.String(),
		Compliance: plan.Status.Kind.String(),
	}
	if plan.HasWrite() {
		res.Solved = plan.Solved.String()
	}
	if plan.Status.Kind == solver.Violation {
		d := plan.Status.Deficit
		res.Deficit = &d
	}
	return res
}

func writeSolveText(w io.Writer, res solveResult) error {
	line := func(name string, v *float64, unit string, solved bool) string {
		text := "-"
		if v != nil {
			text = solver.FormatValue(*v) + unit
		}
		if solved {
			text += "  (computed)"
		}
		return fmt.Sprintf("%-10s%s\n", name, text)
	}

	var b strings.Builder
	b.WriteString(line("angle", res.Angle, "°", res.Solved == solver.Angle.String()))
	b.WriteString(line("height", res.Height, " m", res.Solved == solver.Height.String()))
	b.WriteString(line("distance", res.Distance, " m", res.Solved == solver.Distance.String()))
	fmt.Fprintf(&b, "%-10s%s\n", "lock", res.Lock)

	status := "incomplete"
	switch res.Compliance {
	case solver.Compliant.String():
		status = "satisfied"
	case solver.Violation.String():
		status = "violated, missing distance " + solver.FormatValue(*res.Deficit) + " m"
	}
	fmt.Fprintf(&b, "%-10s%s\n", "1:1 rule", status)

	_, err := io.WriteString(w, b.String())
	return err
}
