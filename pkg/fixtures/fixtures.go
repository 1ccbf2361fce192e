package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	apiloss "github.com/traininglab/simreg/pkg/api/types/lossdata"
	apimach "github.com/traininglab/simreg/pkg/api/types/machines"
	apisim "github.com/traininglab/simreg/pkg/api/types/simulations"
	"github.com/traininglab/simreg/pkg/domain"
	"github.com/traininglab/simreg/pkg/domain/registry/db"
)

// Report counts records inserted by Load.
type Report struct {
	Machines    int
	Simulations int
	LossSamples int
}

// Load seeds the database with records read from JSON files under root:
// machines.json, simulations.json and lossdata.json, in that order so
// that references resolve. Each file is optional and skipped when absent.
func Load(ctx context.Context, root string, dbr db.RegistryDatabase) (Report, error) {
	rep := Report{}

	machines, err := loadFile[apimach.Spec](filepath.Join(root, "machines.json"))
	if err != nil {
		return rep, err
	}
	for _, m := range machines {
		if _, err := dbr.Machines().New(ctx, m.SpecOf()); err != nil {
			return rep, fmt.Errorf("machine %q: %w", m.Name, err)
		}
		rep.Machines += 1
	}

	simulations, err := loadFile[apisim.Spec](filepath.Join(root, "simulations.json"))
	if err != nil {
		return rep, err
	}
	for _, s := range simulations {
		state, err := domain.AsState(s.State)
		if err != nil {
			return rep, fmt.Errorf("simulation %q: %w", s.Name, err)
		}
		spec := domain.SimulationSpec{
			Name: s.Name, State: state, MachineName: s.MachineName,
		}
		if _, err := dbr.Simulations().New(ctx, spec); err != nil {
			return rep, fmt.Errorf("simulation %q: %w", s.Name, err)
		}
		rep.Simulations += 1
	}

	samples, err := loadFile[apiloss.Spec](filepath.Join(root, "lossdata.json"))
	if err != nil {
		return rep, err
	}
	for _, l := range samples {
		if _, err := dbr.LossData().New(ctx, l.SpecOf()); err != nil {
			return rep, fmt.Errorf("loss sample (simulation id %d): %w", l.SimulationId, err)
		}
		rep.LossSamples += 1
	}

	return rep, nil
}

func loadFile[T any](path string) ([]T, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	out := []T{}
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
