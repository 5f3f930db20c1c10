package settings

import (
	"os"

	koanftoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/excalamus/nostalgic/pkg/errors"
	"github.com/excalamus/nostalgic/pkg/paths"
	"github.com/excalamus/nostalgic/pkg/value"
)

// DefaultSection is the table holding all persisted settings
const DefaultSection = "General"

// Write persists the registry to its config_file path, pulling from bound
// getters first. It is shorthand for WriteFile("", true).
func (r *Registry) Write() error {
	return r.WriteFile("", true)
}

// WriteFile persists every declared setting except config_file to filename,
// replacing the file in full. An empty filename uses the registry's
// config_file value. When sync is true, bound getters are invoked first
// (declaration order) so the snapshot reflects live external state. The
// parent directory is created if missing. Null values have nothing to
// persist and are skipped. Keys within the file appear in go-toml's
// deterministic order; the file is a whole snapshot, so order carries no
// meaning there.
func (r *Registry) WriteFile(filename string, sync bool) error {
	if filename == "" {
		filename = r.ConfigFile()
	}
	filename, err := paths.Normalize(filename)
	if err != nil {
		return err
	}

	if sync {
		if _, err := r.Get(); err != nil {
			return err
		}
	}

	section := make(map[string]interface{})
	for _, key := range r.order {
		if key == ConfigFileKey {
			continue
		}
		v := r.settings[key].Value()
		if v == cty.NilVal || v.IsNull() {
			continue
		}

		raw, err := value.Encode(v)
		if err != nil {
			return errors.Wrapf(err, errors.ErrEncode, "failed to encode setting '%s'", key)
		}
		section[key] = raw
	}

	data, err := toml.Marshal(map[string]interface{}{DefaultSection: section})
	if err != nil {
		return errors.Wrap(err, errors.ErrEncode, "failed to render settings file")
	}

	if err := paths.EnsureParentDir(filename); err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write settings file %q", filename)
	}

	log.Debug().Str("file", filename).Int("settings", len(section)).Msg("Settings written")
	return nil
}

// Read loads the registry from its config_file path, pushing loaded values
// to bound setters. It is shorthand for ReadFile("", true).
func (r *Registry) Read() error {
	return r.ReadFile("", true)
}

// ReadFile parses filename and assigns each value whose key is already
// declared; keys present in the file but never declared are ignored, not
// auto-declared. An empty filename uses the registry's config_file value.
// When sync is true, each loaded value is also pushed through that setting's
// setter when one is bound. On any error the registry is left unchanged.
func (r *Registry) ReadFile(filename string, sync bool) error {
	if filename == "" {
		filename = r.ConfigFile()
	}
	filename, err := paths.Normalize(filename)
	if err != nil {
		return err
	}

	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrFileNotFound, "settings file %q does not exist", filename)
		}
		return errors.Wrapf(err, errors.ErrFileRead, "failed to stat settings file %q", filename)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(filename), koanftoml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrParse, "failed to parse settings file %q", filename)
	}

	section, _ := k.Raw()[DefaultSection].(map[string]interface{})

	// decode everything before assigning anything so a malformed value
	// leaves the registry untouched
	loaded := make(map[string]cty.Value)
	for _, key := range r.order {
		raw, ok := section[key]
		if !ok {
			continue
		}
		v, err := value.Decode(raw)
		if err != nil {
			return errors.Wrapf(err, errors.ErrDecode, "failed to decode setting '%s'", key)
		}
		loaded[key] = v
	}

	for _, key := range r.order {
		v, ok := loaded[key]
		if !ok {
			continue
		}
		s := r.settings[key]
		s.SetValue(v)
		if sync && s.HasSetter() {
			if err := s.Set(v); err != nil {
				return err
			}
		}
	}

	log.Debug().Str("file", filename).Int("loaded", len(loaded)).Msg("Settings read")
	return nil
}
