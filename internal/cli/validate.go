package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathq/pathq/internal/pathpattern"
)

// PatternValidation is the per-pattern section of a validate report.
type PatternValidation struct {
	Name         string   `json:"name" yaml:"name"`
	IsWellFormed bool     `json:"is_well_formed" yaml:"is_well_formed"`
	Warnings     []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ValidateReport is the full validate command output.
type ValidateReport struct {
	Source   string              `json:"source" yaml:"source"`
	Valid    bool                `json:"valid" yaml:"valid"`
	Patterns []PatternValidation `json:"patterns" yaml:"patterns"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <defs-dir>",
		Short: "Validate pattern definitions",
		Long: `Validate compiled pattern definitions.

Checks every pattern for structural problems: negative or inverted
quantifier bounds, empty alternations, empty quantified groups, and empty
patterns. Exits 1 if any pattern is malformed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, defsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, err := LoadDefinitions(defsDir)
	if err != nil {
		return reportLoadError(formatter, err)
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", result.FileCount, defsDir)

	report := &ValidateReport{
		Source: defsDir,
		Valid:  true,
	}
	for _, def := range result.Definitions {
		formatter.VerboseLog("Validating pattern: %s", def.Name)
		vr := pathpattern.Validate(def.Pattern)
		report.Patterns = append(report.Patterns, PatternValidation{
			Name:         def.Name,
			IsWellFormed: vr.IsWellFormed,
			Warnings:     vr.Warnings,
		})
		if !vr.IsWellFormed {
			report.Valid = false
		}
	}

	var outErr error
	if opts.Format == "text" {
		outErr = formatter.Success(formatValidateReport(report))
	} else {
		outErr = formatter.Success(report)
	}
	if outErr != nil {
		return outErr
	}

	if !report.Valid {
		return NewExitError(ExitFailure, "one or more patterns are malformed")
	}
	return nil
}

func formatValidateReport(report *ValidateReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "source: %s\n", report.Source)
	fmt.Fprintf(&b, "patterns: %d\n", len(report.Patterns))

	for _, pv := range report.Patterns {
		status := "ok"
		if !pv.IsWellFormed {
			status = "malformed"
		}
		fmt.Fprintf(&b, "\npattern %s: %s\n", pv.Name, status)
		for _, w := range pv.Warnings {
			fmt.Fprintf(&b, "  warning: %s\n", w)
		}
	}

	if report.Valid {
		fmt.Fprintf(&b, "\nall patterns well-formed\n")
	} else {
		fmt.Fprintf(&b, "\nvalidation failed\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
