package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pathq/pathq/internal/pathpattern"
)

// AnalyzeOptions holds flags for the analyze command.
type AnalyzeOptions struct {
	*RootOptions

	// newReportID generates the report identifier. Overridable in tests
	// for deterministic output.
	newReportID func() string
}

// PatternAnalysis is the per-pattern section of an analyze report.
type PatternAnalysis struct {
	Name          string   `json:"name" yaml:"name"`
	Binding       string   `json:"binding,omitempty" yaml:"binding,omitempty"`
	Mode          string   `json:"mode" yaml:"mode"`
	MinLength     int      `json:"min_length" yaml:"min_length"`
	MaxLength     *int     `json:"max_length" yaml:"max_length"` // null = unbounded
	Unbounded     bool     `json:"unbounded" yaml:"unbounded"`
	CanMatchEmpty bool     `json:"can_match_empty" yaml:"can_match_empty"`
	NodeCount     int      `json:"node_count" yaml:"node_count"`
	EdgeCount     int      `json:"edge_count" yaml:"edge_count"`
	NodeVariables []string `json:"node_variables,omitempty" yaml:"node_variables,omitempty"`
	EdgeVariables []string `json:"edge_variables,omitempty" yaml:"edge_variables,omitempty"`
	NodeLabels    []string `json:"node_labels,omitempty" yaml:"node_labels,omitempty"`
	EdgeLabels    []string `json:"edge_labels,omitempty" yaml:"edge_labels,omitempty"`
	Fingerprint   string   `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`

	// Normalization effect, measured by comparing the pattern with its
	// normalized form.
	AlreadyNormal         bool `json:"already_normal" yaml:"already_normal"`
	BranchesRemoved       int  `json:"branches_removed,omitempty" yaml:"branches_removed,omitempty"`
	AlternationsCollapsed int  `json:"alternations_collapsed,omitempty" yaml:"alternations_collapsed,omitempty"`
}

// AnalyzeReport is the full analyze command output.
type AnalyzeReport struct {
	ReportID string            `json:"report_id" yaml:"report_id"`
	Source   string            `json:"source" yaml:"source"`
	Patterns []PatternAnalysis `json:"patterns" yaml:"patterns"`
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{
		RootOptions: rootOpts,
		newReportID: func() string { return uuid.Must(uuid.NewV7()).String() },
	}

	cmd := &cobra.Command{
		Use:   "analyze <defs-dir>",
		Short: "Analyze pattern definitions",
		Long: `Analyze compiled pattern definitions without executing anything.

For each pattern the report includes traversal length bounds, boundedness,
structural counts, bound variables, referenced labels, a structural
fingerprint, and the effect normalization would have.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(opts, args[0], cmd)
		},
	}

	return cmd
}

func runAnalyze(opts *AnalyzeOptions, defsDir string, cmd *cobra.Command) error {
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

	report := &AnalyzeReport{
		ReportID: opts.newReportID(),
		Source:   defsDir,
	}
	for _, def := range result.Definitions {
		formatter.VerboseLog("Analyzing pattern: %s", def.Name)
		report.Patterns = append(report.Patterns, analyzePattern(def.Name, def.Pattern))
	}

	if opts.Format == "text" {
		return formatter.Success(formatAnalyzeReport(report))
	}
	return formatter.Success(report)
}

// analyzePattern computes the full static report for one pattern.
func analyzePattern(name string, p pathpattern.Pattern) PatternAnalysis {
	a := PatternAnalysis{
		Name:          name,
		Binding:       p.Binding,
		Mode:          p.Mode.String(),
		MinLength:     pathpattern.MinLength(p),
		MaxLength:     pathpattern.MaxLength(p),
		Unbounded:     pathpattern.IsUnbounded(p),
		CanMatchEmpty: pathpattern.CanMatchEmpty(p),
		NodeCount:     pathpattern.NodeCount(p),
		EdgeCount:     pathpattern.EdgeCount(p),
		NodeVariables: pathpattern.NodeVariables(p),
		EdgeVariables: pathpattern.EdgeVariables(p),
		NodeLabels:    pathpattern.NodeLabels(p),
		EdgeLabels:    pathpattern.EdgeLabels(p),
	}

	// A payload that cannot be canonically encoded just leaves the
	// fingerprint blank; analysis of the rest of the pattern still stands.
	if fp, err := pathpattern.Fingerprint(p); err == nil {
		a.Fingerprint = fp
	}

	np := pathpattern.Normalized(p)
	a.AlreadyNormal = pathpattern.Equal(p, np)
	a.BranchesRemoved = countBranches(p) - countBranches(np)
	a.AlternationsCollapsed = countAlternations(p) - countAlternations(np)

	return a
}

// countBranches counts alternation branches over the whole tree.
func countBranches(p pathpattern.Pattern) int {
	total := 0
	for _, el := range p.Elements {
		switch e := el.(type) {
		case pathpattern.Quantified:
			total += countBranches(e.Inner)
		case pathpattern.Alternation:
			total += len(e.Branches)
			for _, b := range e.Branches {
				total += countBranches(b)
			}
		}
	}
	return total
}

// countAlternations counts alternation elements over the whole tree.
func countAlternations(p pathpattern.Pattern) int {
	total := 0
	for _, el := range p.Elements {
		switch e := el.(type) {
		case pathpattern.Quantified:
			total += countAlternations(e.Inner)
		case pathpattern.Alternation:
			total++
			for _, b := range e.Branches {
				total += countAlternations(b)
			}
		}
	}
	return total
}

// formatAnalyzeReport renders the text form of a report. Fingerprints are
// omitted from text output; they are machine-oriented and available in the
// structured formats.
func formatAnalyzeReport(report *AnalyzeReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "report: %s\n", report.ReportID)
	fmt.Fprintf(&b, "source: %s\n", report.Source)
	fmt.Fprintf(&b, "patterns: %d\n", len(report.Patterns))

	for _, a := range report.Patterns {
		fmt.Fprintf(&b, "\npattern %s\n", a.Name)
		if a.Binding != "" {
			fmt.Fprintf(&b, "  binding: %s\n", a.Binding)
		}
		fmt.Fprintf(&b, "  mode: %s\n", a.Mode)
		fmt.Fprintf(&b, "  min length: %d\n", a.MinLength)
		if a.MaxLength == nil {
			fmt.Fprintf(&b, "  max length: unbounded\n")
		} else {
			fmt.Fprintf(&b, "  max length: %d\n", *a.MaxLength)
		}
		fmt.Fprintf(&b, "  can match empty: %t\n", a.CanMatchEmpty)
		fmt.Fprintf(&b, "  node count: %d\n", a.NodeCount)
		fmt.Fprintf(&b, "  edge count: %d\n", a.EdgeCount)
		fmt.Fprintf(&b, "  node variables: %s\n", formatSet(a.NodeVariables))
		fmt.Fprintf(&b, "  edge variables: %s\n", formatSet(a.EdgeVariables))
		fmt.Fprintf(&b, "  node labels: %s\n", formatSet(a.NodeLabels))
		fmt.Fprintf(&b, "  edge labels: %s\n", formatSet(a.EdgeLabels))
		if a.AlreadyNormal {
			fmt.Fprintf(&b, "  normalization: already normal\n")
		} else {
			fmt.Fprintf(&b, "  normalization: removes %d duplicate branch(es), collapses %d alternation(s)\n",
				a.BranchesRemoved, a.AlternationsCollapsed)
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func formatSet(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

// reportLoadError emits a load error through the formatter and returns an
// ExitError carrying the command-error exit code.
func reportLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		formatter.Error(loadErr.Code, loadErr.Message)
	} else {
		formatter.Error(ErrCodeGeneric, err.Error())
	}
	return WrapExitError(ExitCommandError, "loading definitions", err)
}
