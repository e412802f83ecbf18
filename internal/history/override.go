package history

import "strings"

// Override is a user customisation of an installed application.
// Nil fields leave the registry value untouched.
type Override struct {
	Name       *string
	Icon       *string
	SystemIcon *string
	Hidden     *bool
}

// IsZero reports whether the override changes nothing
func (o Override) IsZero() bool {
	return o.Name == nil && o.Icon == nil && o.SystemIcon == nil && o.Hidden == nil
}

// Overrides maps desktop ids (or display names) to overrides
type Overrides map[string]Override

// Lookup finds the override for an application: by exact id, then by id
// without its ".desktop" suffix, then by display name.
func (o Overrides) Lookup(id, name string) (Override, bool) {
	if ovr, ok := o[id]; ok {
		return ovr, true
	}
	if base, found := strings.CutSuffix(id, ".desktop"); found {
		if ovr, ok := o[base]; ok {
			return ovr, true
		}
	}
	ovr, ok := o[name]
	return ovr, ok
}

// StringPtr returns nil for an empty value so that clearing an edit field
// removes the override field.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
