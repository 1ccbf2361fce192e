package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownState = errors.New("unknown simulation state")

// lifecycle state of a simulation run.
//
// No transition rule between states is enforced.
type State string

var (
	Pending  State = "pending"
	Running  State = "running"
	Finished State = "finished"
)

func (s State) String() string {
	return string(s)
}

func AsState(s string) (State, error) {
	switch State(s) {
	case Pending:
		return Pending, nil
	case Running:
		return Running, nil
	case Finished:
		return Finished, nil
	default:
		return State(s), fmt.Errorf("%w: %s", ErrUnknownState, s)
	}
}

// a simulation run, optionally bound to the machine hosting it.
type Simulation struct {
	Id          int
	Name        string
	State       State
	DateCreated time.Time
	DateUpdated time.Time

	// id of the machine this simulation runs on. nil when unbound.
	MachineId *int
}

func (s *Simulation) Equal(o *Simulation) bool {
	if (s == nil) || (o == nil) {
		return (s == nil) && (o == nil)
	}
	return s.Id == o.Id &&
		s.Name == o.Name &&
		s.State == o.State &&
		s.DateCreated.Equal(o.DateCreated) &&
		s.DateUpdated.Equal(o.DateUpdated) &&
		pointerEqual(s.MachineId, o.MachineId)
}

// a simulation joined with its machine. Machine is nil when unbound.
type SimulationDetail struct {
	Simulation
	Machine *Machine
}

func (d *SimulationDetail) Equal(o *SimulationDetail) bool {
	if (d == nil) || (o == nil) {
		return (d == nil) && (o == nil)
	}
	return d.Simulation.Equal(&o.Simulation) && d.Machine.Equal(o.Machine)
}

// user-given properties of a simulation to be registered.
type SimulationSpec struct {
	Name  string
	State State

	// name of the machine to bind. Empty means unbound.
	//
	// A non-empty name which does not identify a registered machine
	// fails the registration.
	MachineName string
}

// ordering of simulation listings.
//
// The zero value means "no explicit order".
type SimulationOrder string

var (
	OrderUnspecified   SimulationOrder = ""
	OrderByName        SimulationOrder = "name"
	OrderByNameDesc    SimulationOrder = "-name"
	OrderByCreated     SimulationOrder = "created"
	OrderByCreatedDesc SimulationOrder = "-created"
	OrderByUpdated     SimulationOrder = "updated"
	OrderByUpdatedDesc SimulationOrder = "-updated"
)

// AsSimulationOrder maps a user-given sort key to a SimulationOrder.
//
// Unknown keys map to OrderUnspecified (= no explicit order), not an error,
// so that they can never reach query text.
func AsSimulationOrder(s string) SimulationOrder {
	switch SimulationOrder(s) {
	case OrderByName, OrderByNameDesc,
		OrderByCreated, OrderByCreatedDesc,
		OrderByUpdated, OrderByUpdatedDesc:
		return SimulationOrder(s)
	default:
		return OrderUnspecified
	}
}

// query for listing simulations.
type SimulationFindQuery struct {
	// filter by state. nil means no filtering.
	State *State

	// ordering of the result.
	Order SimulationOrder
}

func pointerEqual[T comparable](a, b *T) bool {
	if (a == nil) || (b == nil) {
		return (a == nil) && (b == nil)
	}
	return *a == *b
}
