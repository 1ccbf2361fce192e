package domain

import (
	"github.com/traininglab/simreg/pkg/api/types/misc/fixpoint"
)

// one observed point of a simulation's convergence curve.
type LossSample struct {
	Id           int
	Seconds      int
	Loss         fixpoint.Decimal
	SimulationId int
}

func (l *LossSample) Equal(o *LossSample) bool {
	if (l == nil) || (o == nil) {
		return (l == nil) && (o == nil)
	}
	return l.Id == o.Id &&
		l.Seconds == o.Seconds &&
		l.Loss.Equal(o.Loss) &&
		l.SimulationId == o.SimulationId
}

// user-given properties of a loss sample to be recorded.
//
// Duplicated (SimulationId, Seconds) pairs are allowed;
// every recorded sample is kept.
type LossSampleSpec struct {
	Seconds      int
	Loss         fixpoint.Decimal
	SimulationId int
}

// (seconds, loss) pair of a convergence graph.
type LossPoint struct {
	Seconds int
	Loss    fixpoint.Decimal
}

func (p LossPoint) Equal(o LossPoint) bool {
	return p.Seconds == o.Seconds && p.Loss.Equal(o.Loss)
}
