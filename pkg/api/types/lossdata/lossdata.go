package lossdata

import (
	"encoding/json"
	"fmt"

	"github.com/traininglab/simreg/pkg/api/types/misc/fixpoint"
	"github.com/traininglab/simreg/pkg/domain"
)

// Spec is a request body to record a loss sample.
type Spec struct {
	Seconds      int              `json:"seconds"`
	Loss         fixpoint.Decimal `json:"loss"`
	SimulationId int              `json:"simulation_id"`
}

// implement encoding/json.Unmarshaler
func (s *Spec) UnmarshalJSON(b []byte) error {
	f := new(struct {
		Seconds      *int              `json:"seconds"`
		Loss         *fixpoint.Decimal `json:"loss"`
		SimulationId *int              `json:"simulation_id"`
	})
	if err := json.Unmarshal(b, f); err != nil {
		return err
	}
	if f.Seconds == nil {
		return fmt.Errorf(`required field "seconds" is missing`)
	}
	if f.Loss == nil {
		return fmt.Errorf(`required field "loss" is missing`)
	}
	if f.SimulationId == nil {
		return fmt.Errorf(`required field "simulation_id" is missing`)
	}
	s.Seconds = *f.Seconds
	s.Loss = *f.Loss
	s.SimulationId = *f.SimulationId
	return nil
}

func (s *Spec) SpecOf() domain.LossSampleSpec {
	return domain.LossSampleSpec{
		Seconds:      s.Seconds,
		Loss:         s.Loss,
		SimulationId: s.SimulationId,
	}
}

// Point is one sample on the loss curve of a simulation.
type Point struct {
	Seconds int              `json:"seconds"`
	Loss    fixpoint.Decimal `json:"loss"`
}

func (p Point) Equal(o Point) bool {
	return p.Seconds == o.Seconds && p.Loss.Equal(o.Loss)
}

func ComposePoint(p domain.LossPoint) Point {
	return Point{Seconds: p.Seconds, Loss: p.Loss}
}

// Created is the response body for successful recording.
type Created struct {
	OK      bool   `json:"OK"`
	Message string `json:"message"`
	Id      int    `json:"id"`
}
