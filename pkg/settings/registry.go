package settings

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/excalamus/nostalgic/pkg/errors"
	"github.com/excalamus/nostalgic/pkg/logging"
	"github.com/excalamus/nostalgic/pkg/paths"
)

var log = logging.GetLogger("settings")

// ConfigFileKey is the always-present setting holding the absolute path used
// for persistence. It behaves like any other setting except that Write never
// serializes it.
const ConfigFileKey = "config_file"

// Options configures a Registry
type Options struct {
	// ConfigFile is the persistence path. Empty derives the default path
	// for the invoking program. The stored value is always absolute.
	ConfigFile string

	// Strict elevates declaration advisories to errors. A rejected declare
	// leaves the registry unchanged.
	Strict bool
}

// Registry owns a collection of Settings keyed by name. Declaration order is
// preserved and is the order used for bulk synchronization and for file
// serialization. Construct one with New and pass it to whatever needs it;
// Default provides a shared process-wide instance for callers that want the
// single-registry convenience.
type Registry struct {
	opts     Options
	settings map[string]*Setting
	order    []string
}

// New creates a Registry persisting to configFile. An empty configFile
// derives the default path for the invoking program.
func New(configFile string) (*Registry, error) {
	return NewWith(Options{ConfigFile: configFile})
}

// NewWith creates a Registry with full options
func NewWith(opts Options) (*Registry, error) {
	var configFile string
	var err error
	if opts.ConfigFile == "" {
		configFile, err = paths.DefaultConfigFile()
	} else {
		configFile, err = paths.Normalize(opts.ConfigFile)
	}
	if err != nil {
		return nil, err
	}

	r := &Registry{
		opts:     opts,
		settings: make(map[string]*Setting),
	}

	if _, err := r.Declare(ConfigFileKey, cty.StringVal(configFile), nil, nil); err != nil {
		return nil, err
	}

	log.Debug().Str("configFile", configFile).Msg("Registry created")
	return r, nil
}

// ConfigFile returns the current persistence path
func (r *Registry) ConfigFile() string {
	s, err := r.Setting(ConfigFileKey)
	if err != nil {
		return ""
	}
	v := s.Value()
	if v.IsNull() || v.Type() != cty.String {
		return ""
	}
	return v.AsString()
}

// Declare adds a Setting under key with its value initialized to def. The
// getter and setter hooks may be nil. Declaring an existing key replaces the
// old Setting and its hooks (AdvisoryOverwrite); declaring a key equal to an
// operation name raises AdvisoryShadow. Advisories are returned and logged
// at warn level; in strict mode they become errors and the declare is
// discarded.
func (r *Registry) Declare(key string, def cty.Value, getter Getter, setter Setter) ([]Advisory, error) {
	if key == "" {
		return nil, errors.New(errors.ErrInvalidInput, "setting key cannot be empty")
	}

	var advisories []Advisory
	_, exists := r.settings[key]
	if exists {
		advisories = append(advisories, Advisory{
			Code:    AdvisoryOverwrite,
			Key:     key,
			Message: "setting '" + key + "' is already declared; replacing it and discarding its hooks",
		})
	}
	if _, reserved := reservedKeys[key]; reserved {
		advisories = append(advisories, Advisory{
			Code:    AdvisoryShadow,
			Key:     key,
			Message: "setting '" + key + "' has the same name as a registry operation",
		})
	}

	if r.opts.Strict && len(advisories) > 0 {
		return advisories, errors.Newf(errors.ErrAdvisory,
			"declare of '%s' rejected in strict mode: %s", key, advisories[0].Message)
	}

	for _, a := range advisories {
		log.Warn().Str("key", key).Str("code", string(a.Code)).Msg(a.Message)
	}

	r.settings[key] = NewSetting(key, def, getter, setter)
	if !exists {
		// re-declared keys keep their original position
		r.order = append(r.order, key)
	}

	return advisories, nil
}

// Setting returns the Setting stored under key
func (r *Registry) Setting(key string) (*Setting, error) {
	s, ok := r.settings[key]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "no such setting '%s'", key)
	}
	return s, nil
}

// Value returns the current value of the setting stored under key
func (r *Registry) Value(key string) (cty.Value, error) {
	s, err := r.Setting(key)
	if err != nil {
		return cty.NilVal, err
	}
	return s.Value(), nil
}

// SetValue replaces the current value of the setting stored under key. The
// Setting itself is kept; only its value changes. Undeclared keys are an
// error: a setting must be declared before it can be assigned.
func (r *Registry) SetValue(key string, v cty.Value) error {
	s, err := r.Setting(key)
	if err != nil {
		return err
	}
	s.SetValue(v)
	return nil
}

// Has reports whether key is declared
func (r *Registry) Has(key string) bool {
	_, ok := r.settings[key]
	return ok
}

// Len returns the number of declared settings
func (r *Registry) Len() int {
	return len(r.settings)
}

// Keys returns the declared keys in declaration order
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}
