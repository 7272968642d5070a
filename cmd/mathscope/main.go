// Package main provides the mathscope CLI application entry point.
// Mathscope is an interactive explorer for mathematical objects: it shows an
// object's classified properties and its members grouped by the defining
// ancestor, and lets the user drill down into values and method results.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mathscope/internal/catalog"
	"mathscope/internal/config"
	"mathscope/internal/kind"
	"mathscope/internal/logger"
	"mathscope/internal/rules"
	"mathscope/internal/shell"
	"mathscope/internal/version"
)

var (
	logLevel  string
	logFile   string
	rulesPath string
	testMode  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mathscope",
	Short: "Mathscope - interactive explorer for mathematical objects",
	Long: `Mathscope is an interactive explorer for mathematical objects.
It classifies an object's interesting properties with a declarative rule
table and lists its members grouped by the ancestor that defines them.`,
	Run: runShell, // Default behavior is to run the interactive shell
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive explorer mode",
	Long:  `Start the interactive mathscope shell.`,
	Run:   runShell,
}

// rulesCmd lists the property rules the explorer would classify with.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the loaded property rules",
	Long:  `Display the property names the configured rule table covers.`,
	Run:   runRules,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of mathscope.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("mathscope %s\n", version.Get().String())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Load property rules from a YAML file instead of the built-in table")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")

	// Bind flags to viper
	for _, name := range []string{"log-level", "log-file", "rules", "test-mode"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	// Add subcommands
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("Starting mathscope", "version", version.Get().String())

	cat, table, err := loadRules()
	if err != nil {
		logger.Fatal("Failed to load property rules", "error", err)
	}

	sh, err := shell.New(cat, table)
	if err != nil {
		logger.Fatal("Failed to create shell", "error", err)
	}
	sh.Run()
}

func runRules(_ *cobra.Command, _ []string) {
	_, table, err := loadRules()
	if err != nil {
		logger.Fatal("Failed to load property rules", "error", err)
	}
	names := table.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
}

// loadRules builds the rule table against a fresh catalog's namespace,
// honoring the --rules flag (or MATHSCOPE_RULES) when given. The table must
// be compiled against the same catalog the shell explores: rule contexts
// match kinds by identity.
func loadRules() (*catalog.Catalog, *rules.Table, error) {
	cat := catalog.New()
	ns := kind.NewNamespace()
	if err := cat.Register(ns); err != nil {
		return nil, nil, fmt.Errorf("failed to register catalog: %w", err)
	}
	var table *rules.Table
	var err error
	if path := viper.GetString("rules"); path != "" {
		table, err = rules.LoadFile(path, ns)
	} else {
		table, err = rules.LoadDefault(ns)
	}
	if err != nil {
		return nil, nil, err
	}
	return cat, table, nil
}
