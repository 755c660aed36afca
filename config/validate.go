package config

import (
	"strings"

	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/version"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.SrcDir == "" {
		return errors.NewInvalidConfigError("src_dir cannot be empty")
	}
	if c.DestDir == "" {
		return errors.NewInvalidConfigError("dest_dir cannot be empty")
	}

	// Suffixes identify units by file name, so an empty one would match everything
	if c.PackSuffix == "" {
		return errors.NewInvalidConfigError("pack_suffix cannot be empty")
	}
	if c.HackSuffix == "" {
		return errors.NewInvalidConfigError("hack_suffix cannot be empty")
	}
	if c.PackSuffix == c.HackSuffix {
		return errors.NewInvalidConfigError("pack_suffix and hack_suffix must differ, both are %q", c.PackSuffix)
	}

	if c.ConstructorPrefix == "" || c.StaticPrefix == "" {
		return errors.NewInvalidConfigError("constructor_prefix and static_prefix cannot be empty")
	}
	// The first matching prefix wins, so one must not swallow the other
	if strings.HasPrefix(c.StaticPrefix, c.ConstructorPrefix) || strings.HasPrefix(c.ConstructorPrefix, c.StaticPrefix) {
		return errors.NewInvalidConfigError("constructor_prefix %q and static_prefix %q overlap", c.ConstructorPrefix, c.StaticPrefix)
	}

	if c.ApexClassName == "" {
		return errors.NewInvalidConfigError("apex_class_name cannot be empty")
	}
	if c.UniversalType == "" {
		return errors.NewInvalidConfigError("universal_type cannot be empty")
	}
	if len(c.ReservedWords) > 0 && c.ReservedSuffix == "" {
		return errors.NewInvalidConfigError("reserved_suffix cannot be empty when reserved_words is set")
	}

	// Workers: 0 = one per CPU, negative = invalid
	if c.Workers < 0 {
		return errors.NewInvalidConfigError("workers must be >= 0, got %d", c.Workers)
	}

	if err := version.CheckConstraint(c.Requires); err != nil {
		return errors.Mark(err, errors.ErrInvalidConfig)
	}

	return nil
}
