package config

import (
	"github.com/spf13/viper"
)

// DefaultReservedWords are Apex keywords that pack methods commonly shadow.
var DefaultReservedWords = []string{
	"abstract", "break", "case", "catch", "class", "continue", "default",
	"delete", "do", "else", "enum", "extends", "false", "final", "finally",
	"for", "if", "implements", "insert", "instanceof", "interface", "merge",
	"new", "null", "return", "static", "super", "switch", "this", "throw",
	"true", "try", "undelete", "update", "upsert", "virtual", "void", "when",
	"while",
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Layout
	v.SetDefault("src_dir", "src")
	v.SetDefault("dest_dir", "classes")
	v.SetDefault("pack_suffix", ".pack")
	v.SetDefault("hack_suffix", ".hack")

	// Notation
	v.SetDefault("constructor_prefix", "constructor ")
	v.SetDefault("static_prefix", "static ")

	// Emission
	v.SetDefault("apex_class_name", "Pack")
	v.SetDefault("reserved_words", DefaultReservedWords)
	v.SetDefault("reserved_suffix", "Fn")
	v.SetDefault("universal_type", "Object")
	v.SetDefault("generate_package", true)
	v.SetDefault("generate_test", true)
	v.SetDefault("skip_tests", []string{})
	v.SetDefault("comment", "// Generated by packgen. DO NOT EDIT.")
	v.SetDefault("meta_file", "")

	// Runtime
	v.SetDefault("workers", 0)
	v.SetDefault("requires", "")
}

// Default returns the configuration built from defaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode
		panic(err)
	}
	return cfg
}
