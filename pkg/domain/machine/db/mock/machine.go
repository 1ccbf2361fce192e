// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/traininglab/simreg/pkg/domain"
	dbmock "github.com/traininglab/simreg/pkg/domain/internal/db/mock"
	kmach "github.com/traininglab/simreg/pkg/domain/machine/db"
)

type MachineInterface struct {
	Impl struct {
		New    func(context.Context, domain.MachineSpec) (int, error)
		List   func(context.Context) ([]domain.Machine, error)
		Update func(context.Context, int, domain.MachineSpec) error
	}
	Calls struct {
		New    dbmock.CallLog[domain.MachineSpec]
		List   dbmock.CallLog[struct{}]
		Update dbmock.CallLog[struct {
			Id   int
			Spec domain.MachineSpec
		}]
	}
}

func NewMachineInterface() *MachineInterface {
	return &MachineInterface{}
}

var _ kmach.MachineInterface = &MachineInterface{}

func (m *MachineInterface) New(ctx context.Context, spec domain.MachineSpec) (int, error) {
	m.Calls.New = append(m.Calls.New, spec)
	if m.Impl.New != nil {
		return m.Impl.New(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *MachineInterface) List(ctx context.Context) ([]domain.Machine, error) {
	m.Calls.List = append(m.Calls.List, struct{}{})
	if m.Impl.List != nil {
		return m.Impl.List(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *MachineInterface) Update(ctx context.Context, id int, spec domain.MachineSpec) error {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id   int
		Spec domain.MachineSpec
	}{Id: id, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, spec)
	}
	panic(errors.New("it should not be called"))
}
