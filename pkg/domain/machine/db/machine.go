package db

import (
	"context"

	"github.com/traininglab/simreg/pkg/domain"
)

type MachineInterface interface {
	// register a new machine.
	//
	// Args
	//
	// - context.Context
	//
	// - MachineSpec : name & location of the machine to be registered
	//
	// Returns
	//
	// - int : id of the machine newly registered
	//
	// - error : ErrConflict when the name is taken already
	New(context.Context, domain.MachineSpec) (int, error)

	// list all machines, ordered by id ascending.
	List(context.Context) ([]domain.Machine, error)

	// overwrite name & location of the machine identified by id.
	//
	// Returns
	//
	// - error : ErrMissing when no machine has the id,
	// ErrConflict when the new name is taken by another machine
	Update(ctx context.Context, id int, spec domain.MachineSpec) error
}
