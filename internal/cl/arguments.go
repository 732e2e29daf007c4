package cl

import "github.com/pkg/errors"

// Arguments is the named scalar table of one operation. Names referenced as
// args.<name> in generated source are declared at construction with AddFloat
// and bound per dispatch with SetFloat. Setting an undeclared name is the
// recoverable bind error of the operation surface.
type Arguments struct {
	floats map[string]float32
}

// NewArguments returns an empty argument table.
func NewArguments() *Arguments {
	return &Arguments{floats: make(map[string]float32)}
}

// AddFloat declares a float argument with an initial value.
func (a *Arguments) AddFloat(name string, value float32) {
	a.floats[name] = value
}

// SetFloat binds a declared float argument.
func (a *Arguments) SetFloat(name string, value float32) error {
	if _, ok := a.floats[name]; !ok {
		return errors.Errorf("cl: no float argument %q declared", name)
	}
	a.floats[name] = value
	return nil
}

// Float returns the current value of a declared float argument.
func (a *Arguments) Float(name string) (float32, error) {
	v, ok := a.floats[name]
	if !ok {
		return 0, errors.Errorf("cl: no float argument %q declared", name)
	}
	return v, nil
}
