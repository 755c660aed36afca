package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/packgen/config"
	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/logger"
	"github.com/teranos/packgen/signature"
)

// ConfigPath is bound to the root --config flag
var ConfigPath string

// loadConfig loads and validates the configuration, then applies the
// directory flags of cmd when present.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg, path, err := config.Load(ConfigPath)
	if err != nil {
		return nil, "", err
	}

	applyDirFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, "", errors.Wrap(err, "configuration validation failed")
	}

	verbosity := getVerbosity(cmd)
	if logger.ShouldOutput(verbosity, logger.OutputConfig) {
		source := path
		if source == "" {
			source = "defaults"
		}
		logger.Infow("Configuration loaded",
			"source", source,
			logger.FieldSrcDir, cfg.SrcDir,
			logger.FieldDestDir, cfg.DestDir,
			"apex_class_name", cfg.ApexClassName)
	}

	return cfg, path, nil
}

// applyDirFlags lets --src and --dest win over every other config source.
func applyDirFlags(cmd *cobra.Command, cfg *config.Config) {
	if f := cmd.Flags().Lookup("src"); f != nil && f.Changed {
		cfg.SrcDir = f.Value.String()
	}
	if f := cmd.Flags().Lookup("dest"); f != nil && f.Changed {
		cfg.DestDir = f.Value.String()
	}
}

func getVerbosity(cmd *cobra.Command) int {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	return verbosity
}

// PrintError writes err to stderr. Malformed signatures get the full
// colored report; other errors their message plus any hints.
func PrintError(err error) {
	var parseErr *signature.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintln(os.Stderr, parseErr.FormatTerminal())
		return
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", pterm.Red("Error:"), err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "  %s %s\n", pterm.Green("Hint:"), hint)
	}
}
