package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/packgen/config"
	"github.com/teranos/packgen/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage packgen configuration",
	Long: `Display and manage packgen configuration.

Configuration sources (in order of precedence):
1. Command line flags (--src, --dest)
2. Environment variables (PACKGEN_* prefix, e.g. PACKGEN_DEST_DIR)
3. Config file (--config, or packgen.toml searched from the working directory upward)
4. Default values

Examples:
  packgen config show                  # Show effective configuration
  packgen config show --format yaml    # Show as YAML
  packgen config validate              # Validate configuration
  packgen config where                 # Show which file is used
  packgen config init                  # Write packgen.toml with defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective configuration from all sources",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE:  runConfigWhere,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var (
	configFormat string
	configForce  bool
)

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configWhereCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Load(ConfigPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data, err := config.Encode(cfg, configFormat)
	if err != nil {
		return err
	}

	if configFormat != config.FormatJSON {
		fmt.Print("# packgen configuration\n")
	}
	fmt.Println(string(data))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Load(ConfigPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Println("✓ Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	fmt.Println("Configuration cascade (later overrides earlier):")
	fmt.Println("  1. [DEFAULT]  Built-in defaults")
	fmt.Printf("  2. [FILE]     --config, or ./%s (searches up directories)\n", config.DefaultConfigFileName)
	fmt.Printf("  3. [ENV]      %s_* environment variables\n", config.EnvPrefix)
	fmt.Println("  4. [FLAGS]    --src, --dest")
	fmt.Println()

	info, err := config.Introspect(ConfigPath)
	if err != nil {
		return err
	}

	if info.ConfigFile == "" {
		fmt.Println("No config file found, using defaults")
	} else {
		fmt.Printf("✓ %s\n", info.ConfigFile)
	}
	fmt.Println()

	data := pterm.TableData{{"Key", "Value", "Source"}}
	for _, s := range info.Settings {
		data = append(data, []string{s.Key, fmt.Sprintf("%v", s.Value), s.SourcePath})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultConfigFileName
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"use --force to overwrite it (the old file is kept as .back1)",
		)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}
