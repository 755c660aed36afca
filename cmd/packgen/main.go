package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/packgen/cmd/packgen/commands"
	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "packgen",
	Short: "packgen - Generate Apex Func dispatch classes from pack signatures",
	Long: `packgen - Generate Apex Func dispatch classes from pack signatures.

Each pack unit (<Pack>.pack) declares constructors, statics and instance
methods, one per line:

  constructor Point :: Integer -> Integer
  static origin :: () -> Point
  distance :: Point -> Double

packgen emits one class exposing every name as a Func that routes calls to
the right overload by argument count and runtime type. Override units
(<Pack>_<name>.hack) replace the generated routing for one name.

Available commands:
  generate - Generate the Apex classes
  check    - Verify the generated classes are up to date
  retrieve - Convert documentation signatures into pack notation
  config   - Show, validate or initialize configuration
  version  - Show version information

Examples:
  packgen generate                  # Generate into dest_dir
  packgen generate --watch          # Regenerate on every change
  packgen check                     # Fail when classes are stale
  packgen retrieve date.txt         # Print pack notation for copied docs`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor || !isTerminal(os.Stdout) {
			pterm.DisableStyling()
		}
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&commands.ConfigPath, "config", "c", "", "Config file (default: packgen.toml, searched upward)")

	// Add commands
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.RetrieveCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(err)
		os.Exit(1)
	}
}
