package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pybootstrap/internal/bootstrap"
	"pybootstrap/internal/logging"
	"pybootstrap/internal/manifest"
	"pybootstrap/internal/system"
	"pybootstrap/internal/ui"
)

var (
	verbose    bool
	jsonOutput bool

	envDir       string
	runtimeDir   string
	pythonBin    string
	dryRun       bool
	extraPkgs    []string
	manifestPath string
)

var rootCmd = &cobra.Command{
	Use:   "pybootstrap",
	Short: "Provision a Python automation environment",
	Long: `pybootstrap sets up a ready-to-use Python environment on a bare machine.

It runs a fixed pipeline:
  - Locate a python interpreter, or install a portable Miniforge runtime
  - Create (or reuse) a virtual environment
  - Upgrade pip, setuptools, and wheel
  - Install a curated set of automation libraries plus any extras`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	RunE: runBootstrap,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.Flags().StringVar(&envDir, "env-dir", bootstrap.DefaultEnvDir, "Virtual environment directory")
	rootCmd.Flags().StringVar(&runtimeDir, "runtime-dir", bootstrap.DefaultRuntimeDir, "Portable runtime install directory")
	rootCmd.Flags().StringVar(&pythonBin, "python-bin", "", "Path to a specific python interpreter")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print planned actions without executing them")
	rootCmd.Flags().StringArrayVar(&extraPkgs, "extra", nil, "Additional package to install (can be repeated)")
	rootCmd.Flags().StringVar(&manifestPath, "manifest", "", "Bootstrap manifest file (.toml, .yaml, or .yml)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var logSuccess = logging.UserSuccess

func runBootstrap(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.DryRun {
		fmt.Fprint(out, ui.RenderPlanHeader())
	}

	result, err := bootstrap.NewProvisioner(opts).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	logSuccess("Environment ready!")
	fmt.Fprint(out, ui.RenderActivation(result.ActivationHint))
	fmt.Fprintln(out)
	fmt.Fprint(out, ui.RenderSummary(ui.Summary{
		Platform:    string(result.Platform),
		Interpreter: result.PythonBin,
		EnvDir:      result.EnvDir,
		EnvPython:   result.EnvPython,
		Python:      result.PythonVersion,
		Packages:    len(result.Packages),
		DryRun:      opts.DryRun,
	}))

	return nil
}

// buildOptions merges flag and manifest values into pipeline options.
// Precedence: explicit flag, then manifest, then built-in default.
func buildOptions(cmd *cobra.Command) (bootstrap.Options, error) {
	opts := bootstrap.Options{
		EnvDir:     envDir,
		RuntimeDir: runtimeDir,
		PythonBin:  pythonBin,
		DryRun:     dryRun,
		Extras:     extraPkgs,
		Out:        cmd.OutOrStdout(),
	}

	if manifestPath == "" {
		return opts, nil
	}

	m, err := manifest.Load(system.DefaultFS(), manifestPath)
	if err != nil {
		return bootstrap.Options{}, err
	}

	if !cmd.Flags().Changed("env-dir") && m.Env.Dir != "" {
		opts.EnvDir = m.Env.Dir
	}
	if !cmd.Flags().Changed("runtime-dir") && m.Env.RuntimeDir != "" {
		opts.RuntimeDir = m.Env.RuntimeDir
	}
	if !cmd.Flags().Changed("python-bin") && m.Env.PythonBin != "" {
		opts.PythonBin = m.Env.PythonBin
	}

	// Manifest packages install ahead of --extra values
	opts.Extras = append(append([]string{}, m.Packages...), extraPkgs...)

	return opts, nil
}
