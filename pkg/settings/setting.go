package settings

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/excalamus/nostalgic/pkg/errors"
)

// Getter reads the current state of an external component.
type Getter func() cty.Value

// Setter pushes a value into an external component.
type Setter func(cty.Value)

// Setting is a single named value with a default, a current value, and
// optional hooks binding it to an external component. The hooks are
// capabilities, not ownership: the Setting never drives the component on
// its own, it only invokes a hook when asked.
type Setting struct {
	key    string
	def    cty.Value
	value  cty.Value
	getter Getter
	setter Setter
}

// NewSetting creates a Setting whose current value starts at def.
func NewSetting(key string, def cty.Value, getter Getter, setter Setter) *Setting {
	return &Setting{
		key:    key,
		def:    def,
		value:  def,
		getter: getter,
		setter: setter,
	}
}

// Key returns the setting's identifier
func (s *Setting) Key() string {
	return s.key
}

// Default returns the value given at declaration time. It never changes.
func (s *Setting) Default() cty.Value {
	return s.def
}

// Value returns the current value
func (s *Setting) Value() cty.Value {
	return s.value
}

// SetValue replaces the current value. The default is untouched.
func (s *Setting) SetValue(v cty.Value) {
	s.value = v
}

// HasGetter reports whether a getter hook is bound
func (s *Setting) HasGetter() bool {
	return s.getter != nil
}

// HasSetter reports whether a setter hook is bound
func (s *Setting) HasSetter() bool {
	return s.setter != nil
}

// Get invokes the bound getter and returns the external component's state.
// The current value is not modified; pulling external state into the
// registry is Registry.Get's job.
func (s *Setting) Get() (cty.Value, error) {
	if s.getter == nil {
		return cty.NilVal, errors.Newf(errors.ErrUnboundAccessor, "setting %q has no getter bound", s.key)
	}
	return s.getter(), nil
}

// Set invokes the bound setter with v, pushing it to the external component.
// The current value is not modified; the registry stays authoritative until
// an explicit sync pulls from the external side.
func (s *Setting) Set(v cty.Value) error {
	if s.setter == nil {
		return errors.Newf(errors.ErrUnboundAccessor, "setting %q has no setter bound", s.key)
	}
	s.setter(v)
	return nil
}
