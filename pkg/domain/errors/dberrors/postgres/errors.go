package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	domerr "github.com/traininglab/simreg/pkg/domain/errors"
)

// requested record is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}
func (m Missing) Unwrap() error {
	return domerr.ErrMissing
}

// a uniqueness constraint rejected the write.
type Conflict struct {
	Table      string
	Constraint string
	Cause      error
}

var _ error = Conflict{}

func (c Conflict) Error() string {
	return fmt.Sprintf(
		"conflicts with an existing record in %s (constraint: %s)",
		c.Table, c.Constraint,
	)
}

func (c Conflict) Unwrap() error {
	return domerr.ErrConflict
}

// Classify maps low-level postgres errors to domain errors.
//
// - unique violation -> Conflict (wraps ErrConflict)
//
// - foreign key violation -> Missing of the referenced record (wraps ErrMissing)
//
// Other errors pass through as they are.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	pgerr := new(pgconn.PgError)
	if !errors.As(err, &pgerr) {
		return err
	}

	switch pgerr.Code {
	case pgerrcode.UniqueViolation:
		return Conflict{
			Table: pgerr.TableName, Constraint: pgerr.ConstraintName, Cause: err,
		}
	case pgerrcode.ForeignKeyViolation:
		return Missing{
			Table:    pgerr.TableName,
			Identity: fmt.Sprintf("referenced record (constraint: %s)", pgerr.ConstraintName),
		}
	default:
		return err
	}
}
