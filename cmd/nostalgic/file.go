package main

import (
	"os"
	"sort"

	koanftoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/excalamus/nostalgic/pkg/errors"
	"github.com/excalamus/nostalgic/pkg/paths"
	"github.com/excalamus/nostalgic/pkg/settings"
)

// resolveFile returns the settings file the command operates on: the --file
// flag when given, the derived default path otherwise.
func resolveFile() (string, error) {
	if settingsFile != "" {
		return paths.Normalize(settingsFile)
	}
	return paths.DefaultConfigFile()
}

// loadSection parses a settings file and returns its stored key/value
// section as plain Go values.
func loadSection(path string) (map[string]interface{}, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "settings file %q does not exist", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to stat settings file %q", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanftoml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse, "failed to parse settings file %q", path)
	}

	section, _ := k.Raw()[settings.DefaultSection].(map[string]interface{})
	return section, nil
}

// sortedKeys returns the section's keys in lexical order for stable output
func sortedKeys(section map[string]interface{}) []string {
	keys := make([]string, 0, len(section))
	for key := range section {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
