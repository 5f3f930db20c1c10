package settings

import (
	"github.com/zclconf/go-cty/cty"
)

// Get pulls external state into the registry. For each requested key with a
// getter bound, the pre-sync value is recorded in the returned map and the
// setting's value is replaced by the getter's return. Keys without a getter
// are skipped and do not appear in the result. With no arguments every
// declared key is synced, in declaration order. Explicitly requesting an
// undeclared key is an error.
//
// Each getter is invoked independently; there is no batching and an earlier
// key's sync is not rolled back if a later key fails.
func (r *Registry) Get(keys ...string) (map[string]cty.Value, error) {
	if len(keys) == 0 {
		keys = r.Keys()
	}

	prior := make(map[string]cty.Value)
	for _, key := range keys {
		s, err := r.Setting(key)
		if err != nil {
			return nil, err
		}
		if !s.HasGetter() {
			continue
		}

		got, err := s.Get()
		if err != nil {
			return nil, err
		}

		prior[key] = s.Value()
		s.SetValue(got)
		log.Debug().Str("key", key).Msg("Pulled value from external component")
	}

	return prior, nil
}

// Set pushes registry state out. For each requested key with a setter bound,
// the setter is invoked with the setting's current value, in declaration
// order when no keys are given. Keys without a setter are skipped. Unlike
// Get, Set returns no values; the asymmetry is inherited and deliberate.
func (r *Registry) Set(keys ...string) error {
	if len(keys) == 0 {
		keys = r.Keys()
	}

	for _, key := range keys {
		s, err := r.Setting(key)
		if err != nil {
			return err
		}
		if !s.HasSetter() {
			continue
		}

		if err := s.Set(s.Value()); err != nil {
			return err
		}
		log.Debug().Str("key", key).Msg("Pushed value to external component")
	}

	return nil
}
