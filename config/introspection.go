package config

import (
	"os"
	"sort"
	"strings"

	"github.com/teranos/packgen/errors"
)

// Source represents where a configuration value came from
type Source string

const (
	SourceDefault     Source = "default"
	SourceFile        Source = "file"
	SourceEnvironment Source = "environment" // PACKGEN_* env vars
)

// SettingInfo is one effective setting and its origin
type SettingInfo struct {
	Key        string      `json:"key"`
	Value      interface{} `json:"value"`
	Source     Source      `json:"source"`
	SourcePath string      `json:"source_path,omitempty"` // File path or env var name
}

// Introspection describes the active configuration
type Introspection struct {
	ConfigFile string        `json:"config_file"`
	Settings   []SettingInfo `json:"settings"`
}

// Introspect resolves the configuration the same way Load does and reports
// where each setting came from. Settings are sorted by key.
func Introspect(path string) (*Introspection, error) {
	if path == "" {
		path = FindProjectConfig()
	}

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	keys := v.AllKeys()
	sort.Strings(keys)

	result := &Introspection{ConfigFile: path, Settings: make([]SettingInfo, 0, len(keys))}
	for _, key := range keys {
		info := SettingInfo{
			Key:        key,
			Value:      v.Get(key),
			Source:     SourceDefault,
			SourcePath: "built-in default",
		}
		if path != "" && v.InConfig(key) {
			info.Source = SourceFile
			info.SourcePath = path
		}

		// Environment wins over the file
		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if envValue, ok := os.LookupEnv(envKey); ok && envValue != "" {
			info.Source = SourceEnvironment
			info.SourcePath = envKey
		}

		result.Settings = append(result.Settings, info)
	}

	return result, nil
}

// Count returns how many settings came from source
func (i *Introspection) Count(source Source) int {
	n := 0
	for _, s := range i.Settings {
		if s.Source == source {
			n++
		}
	}
	return n
}
