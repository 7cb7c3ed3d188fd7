package pkgmvc

import "maps"

// ViewModel is a set of named variables plus the template used to render them.
type ViewModel struct {
	variables map[string]any
	template  string
}

// NewViewModel creates a view model holding a copy of vars.
func NewViewModel(vars map[string]any) *ViewModel {
	vm := &ViewModel{variables: make(map[string]any, len(vars))}
	maps.Copy(vm.variables, vars)
	return vm
}

// Template returns the template identifier, for example "error/not-found".
func (vm *ViewModel) Template() string {
	return vm.template
}

// SetTemplate sets the template identifier.
func (vm *ViewModel) SetTemplate(name string) {
	vm.template = name
}

// Variable returns the variable stored under key.
func (vm *ViewModel) Variable(key string) (any, bool) {
	v, ok := vm.variables[key]
	return v, ok
}

// SetVariable stores v under key.
func (vm *ViewModel) SetVariable(key string, v any) {
	vm.variables[key] = v
}

// Variables returns the variables. The map is shared with the view model.
func (vm *ViewModel) Variables() map[string]any {
	return vm.variables
}
