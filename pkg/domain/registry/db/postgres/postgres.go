package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/traininglab/simreg/pkg/conn/db/postgres/pool"
	kloss "github.com/traininglab/simreg/pkg/domain/lossdata/db"
	kpgloss "github.com/traininglab/simreg/pkg/domain/lossdata/db/postgres"
	kmach "github.com/traininglab/simreg/pkg/domain/machine/db"
	kpgmach "github.com/traininglab/simreg/pkg/domain/machine/db/postgres"
	dbInterface "github.com/traininglab/simreg/pkg/domain/registry/db"
	kschema "github.com/traininglab/simreg/pkg/domain/schema/db"
	kpgschema "github.com/traininglab/simreg/pkg/domain/schema/db/postgres"
	ksim "github.com/traininglab/simreg/pkg/domain/simulation/db"
	kpgsim "github.com/traininglab/simreg/pkg/domain/simulation/db/postgres"
)

type registryDBPostgres struct {
	pool        *pgxpool.Pool
	machines    kmach.MachineInterface
	simulations ksim.SimulationInterface
	lossData    kloss.LossDataInterface
	schema      kschema.SchemaInterface
}

func New(ctx context.Context, url string) (dbInterface.RegistryDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, err
	}

	p := kpool.Wrap(pool)

	return &registryDBPostgres{
		pool:        pool,
		machines:    kpgmach.New(p),
		simulations: kpgsim.New(p),
		lossData:    kpgloss.New(p),
		schema:      kpgschema.New(p),
	}, nil
}

func (r *registryDBPostgres) Machines() kmach.MachineInterface {
	return r.machines
}

func (r *registryDBPostgres) Simulations() ksim.SimulationInterface {
	return r.simulations
}

func (r *registryDBPostgres) LossData() kloss.LossDataInterface {
	return r.lossData
}

func (r *registryDBPostgres) Schema() kschema.SchemaInterface {
	return r.schema
}

func (r *registryDBPostgres) Close() error {
	r.pool.Close()
	return nil
}
