package db

import (
	"context"

	"github.com/traininglab/simreg/pkg/domain"
)

type LossDataInterface interface {
	// record a new loss sample.
	//
	// Duplicated (simulation id, seconds) pairs are accepted;
	// both samples are kept.
	//
	// Args
	//
	// - context.Context
	//
	// - LossSampleSpec : seconds, loss value and simulation id
	//
	// Returns
	//
	// - int : id of the sample newly recorded
	//
	// - error : ErrMissing when the simulation id does not
	// reference a registered simulation
	New(context.Context, domain.LossSampleSpec) (int, error)

	// retrieve the convergence series of a simulation,
	// ordered by seconds ascending.
	//
	// A simulation without samples yields an empty series, not an error.
	Series(ctx context.Context, simulationId int) ([]domain.LossPoint, error)
}
