package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	kpool "github.com/traininglab/simreg/pkg/conn/db/postgres/pool"
	"github.com/traininglab/simreg/pkg/domain"
	kpgerr "github.com/traininglab/simreg/pkg/domain/errors/dberrors/postgres"
	ksim "github.com/traininglab/simreg/pkg/domain/simulation/db"
)

type simulationPG struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) ksim.SimulationInterface {
	return &simulationPG{pool: pool}
}

func (s *simulationPG) New(ctx context.Context, spec domain.SimulationSpec) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// Resolving the machine name and inserting the simulation happen in
	// one transaction, so the machine cannot vanish inbetween.
	var machineId *int
	if spec.MachineName != "" {
		var mid int
		if err := tx.QueryRow(
			ctx,
			`select "id" from "machine" where "name" = $1`,
			spec.MachineName,
		).Scan(&mid); errors.Is(err, pgx.ErrNoRows) {
			return 0, kpgerr.Missing{
				Table:    "machine",
				Identity: fmt.Sprintf("name='%s'", spec.MachineName),
			}
		} else if err != nil {
			return 0, err
		}
		machineId = &mid
	}

	var id int
	if err := tx.QueryRow(
		ctx,
		`
		insert into "simulation" ("name", "state", "date_created", "date_updated", "machine_id")
		values ($1, $2, now(), now(), $3)
		returning "id"
		`,
		spec.Name, string(spec.State), machineId,
	).Scan(&id); err != nil {
		return 0, kpgerr.Classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

// fixed mapping from ordering to ORDER BY clause.
//
// Only values in this table can ever reach query text;
// user input is mapped through it, never interpolated.
var orderBy = map[domain.SimulationOrder]string{
	domain.OrderByName:        `order by "name"`,
	domain.OrderByNameDesc:    `order by "name" desc`,
	domain.OrderByCreated:     `order by "date_created"`,
	domain.OrderByCreatedDesc: `order by "date_created" desc`,
	domain.OrderByUpdated:     `order by "date_updated"`,
	domain.OrderByUpdatedDesc: `order by "date_updated" desc`,
}

func (s *simulationPG) Find(ctx context.Context, q domain.SimulationFindQuery) ([]domain.Simulation, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
	select "id", "name", "state", "date_created", "date_updated", "machine_id"
	from "simulation"
	where $1::bool or "state" = $2
	`
	if clause, ok := orderBy[q.Order]; ok {
		query += clause
	}

	state := ""
	if q.State != nil {
		state = string(*q.State)
	}

	rows, err := conn.Query(ctx, query, q.State == nil, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	simulations := []domain.Simulation{}
	for rows.Next() {
		sim, err := scanSimulation(rows)
		if err != nil {
			return nil, err
		}
		simulations = append(simulations, sim)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return simulations, nil
}

func (s *simulationPG) Get(ctx context.Context, id int) (domain.SimulationDetail, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return domain.SimulationDetail{}, err
	}
	defer conn.Release()

	var (
		detail      domain.SimulationDetail
		state       string
		dateUpdated *time.Time
		mname       *string
		mlocation   *string
	)
	if err := conn.QueryRow(
		ctx,
		`
		select
			"simulation"."id", "simulation"."name", "simulation"."state",
			"simulation"."date_created", "simulation"."date_updated", "simulation"."machine_id",
			"machine"."name", "machine"."location"
		from "simulation"
		left join "machine" on "machine"."id" = "simulation"."machine_id"
		where "simulation"."id" = $1
		`,
		id,
	).Scan(
		&detail.Id, &detail.Name, &state,
		&detail.DateCreated, &dateUpdated, &detail.MachineId,
		&mname, &mlocation,
	); errors.Is(err, pgx.ErrNoRows) {
		return domain.SimulationDetail{}, kpgerr.Missing{
			Table: "simulation", Identity: fmt.Sprintf("id=%d", id),
		}
	} else if err != nil {
		return domain.SimulationDetail{}, err
	}

	detail.State = domain.State(state)
	if dateUpdated != nil {
		detail.DateUpdated = *dateUpdated
	}
	if detail.MachineId != nil {
		detail.Machine = &domain.Machine{
			Id: *detail.MachineId, Name: *mname, Location: *mlocation,
		}
	}

	return detail, nil
}

func scanSimulation(rows pgx.Rows) (domain.Simulation, error) {
	var (
		sim         domain.Simulation
		state       string
		dateUpdated *time.Time
	)
	if err := rows.Scan(
		&sim.Id, &sim.Name, &state, &sim.DateCreated, &dateUpdated, &sim.MachineId,
	); err != nil {
		return domain.Simulation{}, err
	}
	sim.State = domain.State(state)
	if dateUpdated != nil {
		sim.DateUpdated = *dateUpdated
	}
	return sim, nil
}
