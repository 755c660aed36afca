// Package config loads the generator configuration: built-in defaults, then an
// optional project file (packgen.toml, .json or .yaml), then PACKGEN_*
// environment variables.
//
// A loaded Config is a plain value. Components receive it explicitly; nothing
// in the pipeline reads configuration from package state.
package config

// Config is the complete generator configuration.
type Config struct {
	SrcDir  string `mapstructure:"src_dir" toml:"src_dir" yaml:"src_dir" json:"src_dir"`
	DestDir string `mapstructure:"dest_dir" toml:"dest_dir" yaml:"dest_dir" json:"dest_dir"`

	// PackSuffix marks pack units; the pack name is the file name without it
	PackSuffix string `mapstructure:"pack_suffix" toml:"pack_suffix" yaml:"pack_suffix" json:"pack_suffix"`
	// HackSuffix marks override units named <Pack>_<name><HackSuffix>
	HackSuffix string `mapstructure:"hack_suffix" toml:"hack_suffix" yaml:"hack_suffix" json:"hack_suffix"`

	ConstructorPrefix string `mapstructure:"constructor_prefix" toml:"constructor_prefix" yaml:"constructor_prefix" json:"constructor_prefix"`
	StaticPrefix      string `mapstructure:"static_prefix" toml:"static_prefix" yaml:"static_prefix" json:"static_prefix"`

	ApexClassName  string   `mapstructure:"apex_class_name" toml:"apex_class_name" yaml:"apex_class_name" json:"apex_class_name"`
	ReservedWords  []string `mapstructure:"reserved_words" toml:"reserved_words" yaml:"reserved_words" json:"reserved_words"`
	ReservedSuffix string   `mapstructure:"reserved_suffix" toml:"reserved_suffix" yaml:"reserved_suffix" json:"reserved_suffix"`
	// UniversalType matches any argument and is never type-checked
	UniversalType string `mapstructure:"universal_type" toml:"universal_type" yaml:"universal_type" json:"universal_type"`

	GeneratePackage bool     `mapstructure:"generate_package" toml:"generate_package" yaml:"generate_package" json:"generate_package"`
	GenerateTest    bool     `mapstructure:"generate_test" toml:"generate_test" yaml:"generate_test" json:"generate_test"`
	SkipTests       []string `mapstructure:"skip_tests" toml:"skip_tests" yaml:"skip_tests" json:"skip_tests"`

	// Comment is the first line of every generated class (license header)
	Comment string `mapstructure:"comment" toml:"comment" yaml:"comment" json:"comment"`
	// MetaFile is the metadata sidecar template; empty means the built-in one
	MetaFile string `mapstructure:"meta_file" toml:"meta_file" yaml:"meta_file" json:"meta_file"`

	// Workers bounds parallel pack building (0 = one per CPU)
	Workers int `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers"`
	// Requires is a semver constraint on the packgen version
	Requires string `mapstructure:"requires" toml:"requires,omitempty" yaml:"requires,omitempty" json:"requires,omitempty"`
}

// DefaultConfigFileName is looked up from the working directory upward when
// no config path is given.
const DefaultConfigFileName = "packgen.toml"

// EnvPrefix prefixes every environment override, e.g. PACKGEN_DEST_DIR.
const EnvPrefix = "PACKGEN"

// DefaultMeta is the metadata sidecar used when no meta file is configured.
const DefaultMeta = `<?xml version="1.0" encoding="UTF-8"?>
<ApexClass xmlns="http://soap.sforce.com/2006/04/metadata">
    <apiVersion>42.0</apiVersion>
    <status>Active</status>
</ApexClass>`
