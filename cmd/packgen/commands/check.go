package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/generator"
)

// CheckCmd checks if generated classes are up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if generated classes are up to date",
	Long: `Check if the classes in dest_dir match what generate would write.

Nothing is written. Files in dest_dir that packgen does not generate are ignored.

Exit codes:
  0 - Classes are up to date
  1 - Classes are out of date (files listed) or an error occurred

Examples:
  packgen check                      # Check using packgen.toml
  packgen check --dest build/classes`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().String("src", "", "Source directory (overrides src_dir)")
	CheckCmd.Flags().String("dest", "", "Destination directory (overrides dest_dir)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Println("Checking generated classes...")

	result, err := generator.Check(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if result.UpToDate {
		fmt.Println("✓ Classes are up to date")
		return nil
	}

	fmt.Println("✗ Classes are out of date.")
	for _, diff := range result.Differences {
		fmt.Printf("  - %s (%s)\n", diff.Path, diff.Status)
	}

	return errors.WithHint(
		errors.New("generated classes are out of date"),
		"run 'packgen generate' to update",
	)
}
