package postgres

import (
	"context"
	"fmt"

	kpool "github.com/traininglab/simreg/pkg/conn/db/postgres/pool"
	"github.com/traininglab/simreg/pkg/domain"
	kpgerr "github.com/traininglab/simreg/pkg/domain/errors/dberrors/postgres"
	kmach "github.com/traininglab/simreg/pkg/domain/machine/db"
)

type machinePG struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kmach.MachineInterface {
	return &machinePG{pool: pool}
}

func (m *machinePG) New(ctx context.Context, spec domain.MachineSpec) (int, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int
	if err := tx.QueryRow(
		ctx,
		`insert into "machine" ("name", "location") values ($1, $2) returning "id"`,
		spec.Name, spec.Location,
	).Scan(&id); err != nil {
		return 0, kpgerr.Classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (m *machinePG) List(ctx context.Context) ([]domain.Machine, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`select "id", "name", "location" from "machine" order by "id"`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	machines := []domain.Machine{}
	for rows.Next() {
		var mc domain.Machine
		if err := rows.Scan(&mc.Id, &mc.Name, &mc.Location); err != nil {
			return nil, err
		}
		machines = append(machines, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return machines, nil
}

func (m *machinePG) Update(ctx context.Context, id int, spec domain.MachineSpec) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`update "machine" set "name" = $1, "location" = $2 where "id" = $3`,
		spec.Name, spec.Location, id,
	)
	if err != nil {
		return kpgerr.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{Table: "machine", Identity: fmt.Sprintf("id=%d", id)}
	}

	return tx.Commit(ctx)
}
