package fixtures_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/traininglab/simreg/pkg/api/types/misc/fixpoint"
	"github.com/traininglab/simreg/pkg/domain"
	kloss "github.com/traininglab/simreg/pkg/domain/lossdata/db"
	lossmocks "github.com/traininglab/simreg/pkg/domain/lossdata/db/mock"
	kmach "github.com/traininglab/simreg/pkg/domain/machine/db"
	machmocks "github.com/traininglab/simreg/pkg/domain/machine/db/mock"
	kschema "github.com/traininglab/simreg/pkg/domain/schema/db"
	ksim "github.com/traininglab/simreg/pkg/domain/simulation/db"
	simmocks "github.com/traininglab/simreg/pkg/domain/simulation/db/mock"
	"github.com/traininglab/simreg/pkg/fixtures"
	"github.com/traininglab/simreg/pkg/utils/cmp"
	"github.com/traininglab/simreg/pkg/utils/try"
)

type fakeRegistry struct {
	machine    *machmocks.MachineInterface
	simulation *simmocks.SimulationInterface
	loss       *lossmocks.LossDataInterface
}

func (f *fakeRegistry) Machines() kmach.MachineInterface      { return f.machine }
func (f *fakeRegistry) Simulations() ksim.SimulationInterface { return f.simulation }
func (f *fakeRegistry) LossData() kloss.LossDataInterface     { return f.loss }
func (f *fakeRegistry) Schema() kschema.SchemaInterface       { return nil }
func (f *fakeRegistry) Close() error                          { return nil }

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		machine:    machmocks.NewMachineInterface(),
		simulation: simmocks.NewSimulationInterface(),
		loss:       lossmocks.NewLossDataInterface(),
	}
}

func write(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("when all fixture files exist, it loads every record", func(t *testing.T) {
		root := t.TempDir()
		write(t, filepath.Join(root, "machines.json"), `[
			{"name": "vast-01", "location": "us-east"},
			{"name": "vast-02", "location": "eu-west"}
		]`)
		write(t, filepath.Join(root, "simulations.json"), `[
			{"name": "resnet-sweep", "state": "running", "machine_name": "vast-01"},
			{"name": "bert-base", "state": "pending"}
		]`)
		write(t, filepath.Join(root, "lossdata.json"), `[
			{"seconds": 10, "loss": "0.80000", "simulation_id": 1}
		]`)

		dbr := newFakeRegistry()
		dbr.machine.Impl.New = func(context.Context, domain.MachineSpec) (int, error) {
			return 1, nil
		}
		dbr.simulation.Impl.New = func(context.Context, domain.SimulationSpec) (int, error) {
			return 1, nil
		}
		dbr.loss.Impl.New = func(context.Context, domain.LossSampleSpec) (int, error) {
			return 1, nil
		}

		rep := try.To(fixtures.Load(ctx, root, dbr)).OrFatal(t)

		if rep.Machines != 2 || rep.Simulations != 2 || rep.LossSamples != 1 {
			t.Errorf("unexpected report: %+v", rep)
		}

		wantMachines := []domain.MachineSpec{
			{Name: "vast-01", Location: "us-east"},
			{Name: "vast-02", Location: "eu-west"},
		}
		if !cmp.SliceEq(dbr.machine.Calls.New, wantMachines) {
			t.Errorf(
				"machine specs: got %+v, want %+v",
				dbr.machine.Calls.New, wantMachines,
			)
		}

		wantSimulations := []domain.SimulationSpec{
			{Name: "resnet-sweep", State: domain.Running, MachineName: "vast-01"},
			{Name: "bert-base", State: domain.Pending},
		}
		if !cmp.SliceEq(dbr.simulation.Calls.New, wantSimulations) {
			t.Errorf(
				"simulation specs: got %+v, want %+v",
				dbr.simulation.Calls.New, wantSimulations,
			)
		}

		wantSamples := []domain.LossSampleSpec{
			{Seconds: 10, Loss: try.To(fixpoint.Parse("0.80000")).OrFatal(t), SimulationId: 1},
		}
		if !cmp.SliceEqWith(
			dbr.loss.Calls.New, wantSamples,
			func(a, b domain.LossSampleSpec) bool {
				return a.Seconds == b.Seconds &&
					a.Loss.Equal(b.Loss) &&
					a.SimulationId == b.SimulationId
			},
		) {
			t.Errorf(
				"loss specs: got %+v, want %+v",
				dbr.loss.Calls.New, wantSamples,
			)
		}
	})

	t.Run("when no fixture file exists, it loads nothing", func(t *testing.T) {
		dbr := newFakeRegistry()

		rep := try.To(fixtures.Load(ctx, t.TempDir(), dbr)).OrFatal(t)

		if rep.Machines != 0 || rep.Simulations != 0 || rep.LossSamples != 0 {
			t.Errorf("unexpected report: %+v", rep)
		}
		if dbr.machine.Calls.New.Times() != 0 ||
			dbr.simulation.Calls.New.Times() != 0 ||
			dbr.loss.Calls.New.Times() != 0 {
			t.Error("no record should be inserted")
		}
	})

	t.Run("when the store rejects a record, it returns the error", func(t *testing.T) {
		root := t.TempDir()
		write(t, filepath.Join(root, "machines.json"), `[
			{"name": "vast-01", "location": "us-east"}
		]`)

		expectedErr := errors.New("fake error")
		dbr := newFakeRegistry()
		dbr.machine.Impl.New = func(context.Context, domain.MachineSpec) (int, error) {
			return 0, expectedErr
		}

		if _, err := fixtures.Load(ctx, root, dbr); !errors.Is(err, expectedErr) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("when a simulation has an unknown state, it returns an error", func(t *testing.T) {
		root := t.TempDir()
		write(t, filepath.Join(root, "simulations.json"), `[
			{"name": "resnet-sweep", "state": "paused"}
		]`)

		dbr := newFakeRegistry()

		if _, err := fixtures.Load(ctx, root, dbr); !errors.Is(err, domain.ErrUnknownState) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
