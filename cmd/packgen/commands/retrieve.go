package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/packgen/config"
	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/logger"
	"github.com/teranos/packgen/retrieve"
	"github.com/teranos/packgen/signature"
)

var retrieveOutput string

// RetrieveCmd converts documentation signatures into pack notation
var RetrieveCmd = &cobra.Command{
	Use:   "retrieve [signature-file]",
	Short: "Convert documentation signatures into pack notation",
	Long: `Convert method signatures copied from the Apex reference documentation
into pack notation, one declaration per line.

Reads the file argument, or stdin when it is omitted or "-". The constructor
and static prefixes follow the configuration.

Examples:
  packgen retrieve date.txt                    # Print to stdout
  packgen retrieve date.txt -o src/Date.pack   # Write a pack unit
  pbpaste | packgen retrieve`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRetrieve,
}

func init() {
	RetrieveCmd.Flags().StringVarP(&retrieveOutput, "output", "o", "", "Output file (default: stdout)")
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Load(ConfigPath)
	if err != nil {
		return err
	}
	syntax := signature.Syntax{
		ConstructorPrefix: cfg.ConstructorPrefix,
		StaticPrefix:      cfg.StaticPrefix,
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "failed to open signature file %s", args[0])
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = cmd.OutOrStdout()
	if retrieveOutput != "" {
		f, err := os.Create(retrieveOutput)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", retrieveOutput)
		}
		defer f.Close()
		out = f
	}

	n, err := retrieve.Convert(in, out, syntax)
	if err != nil {
		return err
	}

	if logger.ShouldOutput(getVerbosity(cmd), logger.OutputProgress) {
		logger.Infow("Signatures converted", "count", n)
	}
	return nil
}
