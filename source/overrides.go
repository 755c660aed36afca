package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/packgen/errors"
)

// Overrides holds override unit contents keyed by file name without the
// override suffix, i.e. "<Pack>_<key>". It implements dispatch.OverrideSource.
type Overrides map[string]string

// Override returns the override unit for (pack, key), if one was read.
func (o Overrides) Override(pack, key string) (string, bool) {
	content, ok := o[OverrideName(pack, key)]
	return content, ok
}

// OverrideName is the override unit file name for (pack, key), without suffix.
func OverrideName(pack, key string) string {
	return pack + "_" + key
}

// loadOverrides reads the override units in dir that belong to one of packs.
// Contents are kept byte-for-byte, trailing newline included.
func loadOverrides(dir, suffix string, packs []string) (Overrides, error) {
	names, err := Discover(dir, suffix)
	if err != nil {
		return nil, err
	}

	overrides := make(Overrides, len(names))
	for _, name := range names {
		if !ownedBy(name, packs) {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read override unit %s", name)
		}
		overrides[strings.TrimSuffix(name, suffix)] = string(content)
	}
	return overrides, nil
}

func ownedBy(name string, packs []string) bool {
	for _, p := range packs {
		if strings.HasPrefix(name, OverrideName(p, "")) {
			return true
		}
	}
	return false
}
