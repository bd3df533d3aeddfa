// Command cstlint is the thin CLI collaborator external to the core
// engine: it reads files, loads config, calls into pkg/lint, and renders
// diagnostics to the terminal. Mirrors a cobra.Command root/subcommand
// layout, with persistent flags for a path list and a config file in
// place of a single commands-file flag.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aledsdavies/cstlint/internal/config"
	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/lint"
	"github.com/aledsdavies/cstlint/pkg/rulengine"
	"github.com/spf13/cobra"
)

// Build-time variables, set via ldflags.
var (
	Version = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	configPath string
	recommend bool
	debug bool
	logger *slog.Logger
)

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if ec, ok := err.(exitCodeError); ok {
		os.Exit(ec.code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(internalErrorCode)
}

const (
	exitClean = 0
	exitDiagnostics = 1
	internalErrorCode = 2
)

var rootCmd = &cobra.Command{
	Use: "cstlint",
	Short: "Lint and autofix source files with the cstlint static analysis engine",
	Long: `cstlint parses source files with a hand-written recursive-descent parser,
runs a rule engine over the resulting syntax tree, and reports or fixes findings.`,
}

var checkCmd = &cobra.Command{
	Use: "check [files...]",
	Short: "Lint the given files and report diagnostics",
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var fixCmd = &cobra.Command{
	Use: "fix [files...]",
	Short: "Lint the given files and apply automatic fixes in place",
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

var rulesCmd = &cobra.Command{
	Use: "rules",
	Short: "List every registered rule",
	Args: cobra.NoArgs,
	RunE: runRules,
}

var versionCmd = &cobra.Command{
	Use: "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cstlint %s\n", Version)
		fmt.Printf("Built: %s\n", BuildTime)
		fmt.Printf("Commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "cstlint.toml", "Path to the TOML config file")
	rootCmd.PersistentFlags().BoolVar(&recommend, "recommended", false, "Use the recommended rule preset instead of all rules")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug-level logging")

	rootCmd.AddCommand(checkCmd, fixCmd, rulesCmd, versionCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadStore() (*rulengine.Store, error) {
	overrides := map[string]rulengine.Config{}
	usesRecommended := recommend
	if config.Exists(configPath) {
		f, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		overrides = f.Overrides()
		if f.UsesRecommendedPreset() {
			usesRecommended = true
		}
	}
	if usesRecommended {
		return lint.RecommendedStore(overrides), nil
	}
	return lint.DefaultStore(overrides), nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger = newLogger()
	store, err := loadStore()
	if err != nil {
		return err
	}

	worstSeen := diagnostic.Info
	anyDiags := false
	for i, path := range args {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		isModule := lint.DetectModule(string(source))
		result := lint.LintFile(i, string(source), isModule, store)
		logger.Debug("linted file", "path", path, "diagnostics", len(result.Diagnostics))
		for _, d := range result.Diagnostics {
			anyDiags = true
			printDiagnostic(path, d)
			if d.Severity < worstSeen {
				worstSeen = d.Severity
			}
		}
	}
	if anyDiags && worstSeen == diagnostic.Error {
		return exitWith(exitDiagnostics)
	}
	return exitWith(exitClean)
}

func runFix(cmd *cobra.Command, args []string) error {
	logger = newLogger()
	store, err := loadStore()
	if err != nil {
		return err
	}

	for _, path := range args {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		isModule := lint.DetectModule(string(source))
		result := lint.LintFile(0, string(source), isModule, store)
		fixed, iterations := result.ApplyFixes()
		logger.Debug("autofix iterations", "path", path, "iterations", iterations)
		if iterations > 0 {
			if err := os.WriteFile(path, []byte(fixed), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Printf("fixed %s (%d iterations)\n", path, iterations)
		}
	}
	return nil
}

func runRules(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}
	for _, r := range store.Rules() {
		fmt.Printf("%s\t[%s]\trecommended=%v\n", r.Name(), r.Group(), r.Recommended())
	}
	return nil
}

func printDiagnostic(path string, d *diagnostic.Diagnostic) {
	fmt.Printf("%s: %s: %s (%s)\n", path, d.Severity, d.Title, d.Code)
	for _, c := range d.Children {
		fmt.Printf(" %d..%d: %s\n", c.Span.Start, c.Span.End, c.Message)
	}
}

// exitCodeError carries an exit code without printing anything extra;
// main() checks for it via errors.As-free type assertion since cobra
// wants a plain error return.
type exitCodeError struct{ code int }

func (e exitCodeError) Error() string { return "" }

func exitWith(code int) error {
	if code == exitClean {
		return nil
	}
	return exitCodeError{code: code}
}
