// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/traininglab/simreg/pkg/domain"
	dbmock "github.com/traininglab/simreg/pkg/domain/internal/db/mock"
	kloss "github.com/traininglab/simreg/pkg/domain/lossdata/db"
)

type LossDataInterface struct {
	Impl struct {
		New    func(context.Context, domain.LossSampleSpec) (int, error)
		Series func(context.Context, int) ([]domain.LossPoint, error)
	}
	Calls struct {
		New    dbmock.CallLog[domain.LossSampleSpec]
		Series dbmock.CallLog[int]
	}
}

func NewLossDataInterface() *LossDataInterface {
	return &LossDataInterface{}
}

var _ kloss.LossDataInterface = &LossDataInterface{}

func (m *LossDataInterface) New(ctx context.Context, spec domain.LossSampleSpec) (int, error) {
	m.Calls.New = append(m.Calls.New, spec)
	if m.Impl.New != nil {
		return m.Impl.New(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *LossDataInterface) Series(ctx context.Context, simulationId int) ([]domain.LossPoint, error) {
	m.Calls.Series = append(m.Calls.Series, simulationId)
	if m.Impl.Series != nil {
		return m.Impl.Series(ctx, simulationId)
	}
	panic(errors.New("it should not be called"))
}
