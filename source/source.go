// Package source reads every input of a run up front: the pack units, the
// override units next to them and the metadata sidecar template. Nothing
// downstream touches the filesystem until output is written.
package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/packgen/config"
	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/pack"
)

// Unit is one pack source unit.
type Unit struct {
	// Pack is the pack name derived from FileName
	Pack     string
	FileName string
	Content  string
}

// Sources is everything a run reads.
type Sources struct {
	// Units are in discovery order
	Units     []Unit
	Overrides Overrides
	Meta      string
}

// Discover lists the pack unit file names in dir, sorted by name.
// Subdirectories are ignored.
func Discover(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithHint(
				errors.NewMissingInputError("source directory %s does not exist", dir),
				"set src_dir in packgen.toml or pass --src",
			)
		}
		return nil, errors.Mark(errors.Wrapf(err, "failed to read source directory %s", dir), errors.ErrMissingInput)
	}

	// os.ReadDir returns entries sorted by file name
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Load reads every input named by cfg. Missing override units are normal;
// a missing source directory or meta file fails with errors.ErrMissingInput.
func Load(cfg *config.Config) (*Sources, error) {
	names, err := Discover(cfg.SrcDir, cfg.PackSuffix)
	if err != nil {
		return nil, err
	}

	src := &Sources{Overrides: Overrides{}}
	packs := make([]string, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(cfg.SrcDir, name))
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "failed to read pack unit %s", name), errors.ErrMissingInput)
		}
		packName := pack.NameFromFile(name, cfg.PackSuffix)
		packs = append(packs, packName)
		src.Units = append(src.Units, Unit{
			Pack:     packName,
			FileName: name,
			Content:  string(content),
		})
	}

	if src.Overrides, err = loadOverrides(cfg.SrcDir, cfg.HackSuffix, packs); err != nil {
		return nil, err
	}

	if src.Meta, err = loadMeta(cfg.MetaFile); err != nil {
		return nil, err
	}

	return src, nil
}

func loadMeta(path string) (string, error) {
	if path == "" {
		return config.DefaultMeta, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "failed to read meta file %s", path), errors.ErrMissingInput)
	}
	return string(data), nil
}
