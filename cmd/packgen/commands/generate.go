package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/packgen/config"
	"github.com/teranos/packgen/dispatch"
	"github.com/teranos/packgen/generator"
	"github.com/teranos/packgen/logger"
	"github.com/teranos/packgen/source"
)

var (
	generateDryRun bool
	generateStrict bool
	generateWatch  bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Apex dispatch classes",
	Long: `Read every pack unit in src_dir and write the generated classes to dest_dir.

Every input is read and every class rendered before anything is written, so a
malformed signature leaves dest_dir untouched.

Overloads that share a name and parameter count but cannot be told apart by
their parameter types are reported as shadowed. The earlier overload always
wins at runtime. Use --strict to fail instead.

Examples:
  packgen generate                       # Generate using packgen.toml
  packgen generate --src packs --dest force-app/main/default/classes
  packgen generate --dry-run -v          # Show what would be written
  packgen generate --strict              # Fail on shadowed overloads
  packgen generate --watch               # Regenerate on every change`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().String("src", "", "Source directory (overrides src_dir)")
	GenerateCmd.Flags().String("dest", "", "Destination directory (overrides dest_dir)")
	GenerateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Render without writing files")
	GenerateCmd.Flags().BoolVar(&generateStrict, "strict", false, "Treat shadowed overloads as errors")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate when pack or override units change")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, cfgPath, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := generator.Options{DryRun: generateDryRun, Strict: generateStrict}
	verbosity := getVerbosity(cmd)

	if generateWatch {
		return watch(cmd, cfg, cfgPath, opts, verbosity)
	}

	result, err := generator.Run(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}
	printResult(result, verbosity)
	return nil
}

func watch(cmd *cobra.Command, cfg *config.Config, cfgPath string, opts generator.Options, verbosity int) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := generator.NewWatcher(cfg, opts)
	w.OnRun = func(result *generator.Result, err error) {
		if err != nil {
			PrintError(err)
			return
		}
		printResult(result, verbosity)
	}

	// Reload packgen.toml too, when there is one
	if cfgPath != "" {
		cw, err := config.NewWatcher(cfgPath)
		if err != nil {
			logger.Warnw("Config file will not be watched", logger.FieldPath, cfgPath, logger.FieldError, err)
		} else {
			cw.OnReload(func(newCfg *config.Config) error {
				applyDirFlags(cmd, newCfg)
				w.SetConfig(newCfg)
				return nil
			})
			cw.Start()
			defer cw.Stop()
		}
	}

	pterm.Info.Printf("Watching %s (Ctrl+C to stop)\n", cfg.SrcDir)
	return w.Run(ctx)
}

func printResult(result *generator.Result, verbosity int) {
	if logger.ShouldOutput(verbosity, logger.OutputAmbiguities) {
		for _, a := range result.Ambiguities {
			pterm.Warning.Printf("%s\n", a.String())
		}
	}

	if logger.ShouldOutput(verbosity, logger.OutputFiles) {
		for _, f := range result.Files {
			pterm.Printf("  %s %s\n", pterm.LightGreen("✓"), filepath.Join(result.DestDir, f.Path))
		}
	}

	for _, line := range traceLines(result, verbosity) {
		pterm.Printf("  %s\n", line)
	}

	if logger.ShouldOutput(verbosity, logger.OutputTiming) {
		pterm.Printf("  %s %s\n", pterm.LightCyan("took"), result.Duration)
	}

	if result.Written {
		pterm.Success.Printf("Generated %d files from %d packs into %s\n", len(result.Files), len(result.Plans), result.DestDir)
	} else {
		pterm.Info.Printf("Dry run: %d files from %d packs, nothing written\n", len(result.Files), len(result.Plans))
	}
}

// traceLines describes how each routed name is dispatched: override units at
// -vv and every synthesized guard at -vvv.
func traceLines(result *generator.Result, verbosity int) []string {
	showOverrides := logger.ShouldOutput(verbosity, logger.OutputOverrides)
	showBranches := logger.ShouldOutput(verbosity, logger.OutputBranches)

	var lines []string
	for _, plan := range result.Plans {
		for _, fragment := range plan.Fragments {
			switch {
			case fragment.Strategy == dispatch.Verbatim && showOverrides:
				lines = append(lines, fmt.Sprintf("%s.%s: override unit %s",
					plan.ClassName, fragment.EmitName,
					source.OverrideName(plan.Pack.Name, dispatch.OverrideKey(fragment.Group))))
			case fragment.Strategy == dispatch.Synthesized && showBranches:
				for _, branch := range fragment.Branches {
					lines = append(lines, fmt.Sprintf("%s.%s: if(%s)", plan.ClassName, fragment.EmitName, branch.Guard.Render()))
				}
			}
		}
	}
	return lines
}
