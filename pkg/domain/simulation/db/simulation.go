package db

import (
	"context"

	"github.com/traininglab/simreg/pkg/domain"
)

type SimulationInterface interface {
	// register a new simulation run.
	//
	// When the spec has a machine name, it is resolved to a machine id
	// in the same transaction as the insert.
	//
	// Args
	//
	// - context.Context
	//
	// - SimulationSpec : name, state and (optional) machine name
	//
	// Returns
	//
	// - int : id of the simulation newly registered
	//
	// - error : ErrMissing when the machine name does not resolve,
	// ErrConflict when the simulation name is taken already
	New(context.Context, domain.SimulationSpec) (int, error)

	// list simulations, optionally filtered by state and ordered.
	//
	// With OrderUnspecified the store's default order is used.
	Find(context.Context, domain.SimulationFindQuery) ([]domain.Simulation, error)

	// get one simulation joined with its machine.
	//
	// Returns
	//
	// - SimulationDetail : Machine is nil when the simulation is unbound
	//
	// - error : ErrMissing when no simulation has the id
	Get(ctx context.Context, id int) (domain.SimulationDetail, error)
}
