package domain

// a compute machine which can host simulation runs.
type Machine struct {
	Id       int
	Name     string
	Location string
}

func (m *Machine) Equal(o *Machine) bool {
	if (m == nil) || (o == nil) {
		return (m == nil) && (o == nil)
	}
	return m.Id == o.Id &&
		m.Name == o.Name &&
		m.Location == o.Location
}

// user-given properties of a machine to be registered.
type MachineSpec struct {
	Name     string
	Location string
}
