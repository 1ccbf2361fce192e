// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/traininglab/simreg/pkg/domain"
	dbmock "github.com/traininglab/simreg/pkg/domain/internal/db/mock"
	ksim "github.com/traininglab/simreg/pkg/domain/simulation/db"
)

type SimulationInterface struct {
	Impl struct {
		New  func(context.Context, domain.SimulationSpec) (int, error)
		Find func(context.Context, domain.SimulationFindQuery) ([]domain.Simulation, error)
		Get  func(context.Context, int) (domain.SimulationDetail, error)
	}
	Calls struct {
		New  dbmock.CallLog[domain.SimulationSpec]
		Find dbmock.CallLog[domain.SimulationFindQuery]
		Get  dbmock.CallLog[int]
	}
}

func NewSimulationInterface() *SimulationInterface {
	return &SimulationInterface{}
}

var _ ksim.SimulationInterface = &SimulationInterface{}

func (m *SimulationInterface) New(ctx context.Context, spec domain.SimulationSpec) (int, error) {
	m.Calls.New = append(m.Calls.New, spec)
	if m.Impl.New != nil {
		return m.Impl.New(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *SimulationInterface) Find(ctx context.Context, q domain.SimulationFindQuery) ([]domain.Simulation, error) {
	m.Calls.Find = append(m.Calls.Find, q)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, q)
	}
	panic(errors.New("it should not be called"))
}

func (m *SimulationInterface) Get(ctx context.Context, id int) (domain.SimulationDetail, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
