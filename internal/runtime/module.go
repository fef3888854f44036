package runtime

// Module is the runtime representation of a ModuleDefinition: its name and
// the subset of its internal environment that was marked exported.
type Module struct {
	Name    string
	Exports map[string]Value
}

func (*Module) value()       {}
func (*Module) Kind() string { return "module" }
func (m *Module) String() string { return "#<module:" + m.Name + ">" }
