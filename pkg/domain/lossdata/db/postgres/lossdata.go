package postgres

import (
	"context"

	"github.com/jackc/pgtype"
	"github.com/traininglab/simreg/pkg/api/types/misc/fixpoint"
	kpool "github.com/traininglab/simreg/pkg/conn/db/postgres/pool"
	"github.com/traininglab/simreg/pkg/domain"
	kpgerr "github.com/traininglab/simreg/pkg/domain/errors/dberrors/postgres"
	kloss "github.com/traininglab/simreg/pkg/domain/lossdata/db"
)

type lossDataPG struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kloss.LossDataInterface {
	return &lossDataPG{pool: pool}
}

func (l *lossDataPG) New(ctx context.Context, spec domain.LossSampleSpec) (int, error) {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int
	if err := tx.QueryRow(
		ctx,
		`
		insert into "lossdata" ("seconds", "loss", "simulation_id")
		values ($1, $2::numeric(10, 5), $3)
		returning "id"
		`,
		spec.Seconds, spec.Loss.String(), spec.SimulationId,
	).Scan(&id); err != nil {
		return 0, kpgerr.Classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (l *lossDataPG) Series(ctx context.Context, simulationId int) ([]domain.LossPoint, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`
		select "seconds", "loss" from "lossdata"
		where "simulation_id" = $1
		order by "seconds"
		`,
		simulationId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := []domain.LossPoint{}
	for rows.Next() {
		var (
			seconds int
			loss    pgtype.Numeric
		)
		if err := rows.Scan(&seconds, &loss); err != nil {
			return nil, err
		}
		value, err := fixpoint.FromNumeric(loss)
		if err != nil {
			return nil, err
		}
		series = append(series, domain.LossPoint{Seconds: seconds, Loss: value})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return series, nil
}
