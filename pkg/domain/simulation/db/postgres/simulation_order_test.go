package postgres

import (
	"strings"
	"testing"

	"github.com/traininglab/simreg/pkg/domain"
)

func TestOrderByMapping(t *testing.T) {
	t.Run("every ordering except OrderUnspecified has an ORDER BY clause", func(t *testing.T) {
		for _, o := range []domain.SimulationOrder{
			domain.OrderByName, domain.OrderByNameDesc,
			domain.OrderByCreated, domain.OrderByCreatedDesc,
			domain.OrderByUpdated, domain.OrderByUpdatedDesc,
		} {
			clause, ok := orderBy[o]
			if !ok {
				t.Errorf("no clause for %s", o)
				continue
			}
			if !strings.HasPrefix(clause, "order by ") {
				t.Errorf("clause for %s is not an ORDER BY: %s", o, clause)
			}
			if strings.HasPrefix(string(o), "-") != strings.HasSuffix(clause, " desc") {
				t.Errorf("clause for %s has wrong direction: %s", o, clause)
			}
		}
	})

	t.Run("OrderUnspecified is not in the mapping", func(t *testing.T) {
		if clause, ok := orderBy[domain.OrderUnspecified]; ok {
			t.Errorf("unexpected clause for unspecified order: %s", clause)
		}
	})
}
