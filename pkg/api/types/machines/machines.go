package machines

import (
	"encoding/json"
	"fmt"

	"github.com/traininglab/simreg/pkg/domain"
)

// Spec is a request body to register or update a machine.
type Spec struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// implement encoding/json.Unmarshaler
func (s *Spec) UnmarshalJSON(b []byte) error {
	f := new(struct {
		Name     *string `json:"name"`
		Location *string `json:"location"`
	})
	if err := json.Unmarshal(b, f); err != nil {
		return err
	}
	if f.Name == nil {
		return fmt.Errorf(`required field "name" is missing`)
	}
	if f.Location == nil {
		return fmt.Errorf(`required field "location" is missing`)
	}
	s.Name = *f.Name
	s.Location = *f.Location
	return nil
}

func (s *Spec) SpecOf() domain.MachineSpec {
	return domain.MachineSpec{Name: s.Name, Location: s.Location}
}

type Summary struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (s Summary) Equal(o Summary) bool {
	return s.Id == o.Id &&
		s.Name == o.Name &&
		s.Location == o.Location
}

func ComposeSummary(m domain.Machine) Summary {
	return Summary{Id: m.Id, Name: m.Name, Location: m.Location}
}

// Created is the response body for successful registration or update.
type Created struct {
	OK      bool   `json:"OK"`
	Message string `json:"message"`
	Id      int    `json:"id"`
}
