package simulations

import (
	"encoding/json"
	"fmt"

	"github.com/traininglab/simreg/pkg/api/types/machines"
	"github.com/traininglab/simreg/pkg/api/types/misc/rfctime"
	"github.com/traininglab/simreg/pkg/domain"
)

// Spec is a request body to register a simulation.
//
// MachineName is optional. When given, the simulation is linked
// to the machine with that name.
type Spec struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	MachineName string `json:"machine_name,omitempty"`
}

// implement encoding/json.Unmarshaler
func (s *Spec) UnmarshalJSON(b []byte) error {
	f := new(struct {
		Name        *string `json:"name"`
		State       *string `json:"state"`
		MachineName *string `json:"machine_name"`
	})
	if err := json.Unmarshal(b, f); err != nil {
		return err
	}
	if f.Name == nil {
		return fmt.Errorf(`required field "name" is missing`)
	}
	if f.State == nil {
		return fmt.Errorf(`required field "state" is missing`)
	}
	s.Name = *f.Name
	s.State = *f.State
	if f.MachineName != nil {
		s.MachineName = *f.MachineName
	}
	return nil
}

type Summary struct {
	Id          int             `json:"id"`
	Name        string          `json:"name"`
	State       string          `json:"state"`
	DateCreated rfctime.RFC3339 `json:"date_created"`
	DateUpdated rfctime.RFC3339 `json:"date_updated"`
	MachineId   *int            `json:"machine_id"`
	Link        string          `json:"link"`
}

func (s Summary) Equal(o Summary) bool {
	return s.Id == o.Id &&
		s.Name == o.Name &&
		s.State == o.State &&
		s.DateCreated.Equal(o.DateCreated) &&
		s.DateUpdated.Equal(o.DateUpdated) &&
		pointerEqual(s.MachineId, o.MachineId) &&
		s.Link == o.Link
}

// ComposeSummary builds a Summary. link points at the detail page
// of the simulation and is built by the caller, which knows the
// request's scheme and host.
func ComposeSummary(s domain.Simulation, link string) Summary {
	return Summary{
		Id:          s.Id,
		Name:        s.Name,
		State:       string(s.State),
		DateCreated: rfctime.New(s.DateCreated),
		DateUpdated: rfctime.New(s.DateUpdated),
		MachineId:   s.MachineId,
		Link:        link,
	}
}

type Detail struct {
	Id          int               `json:"id"`
	Name        string            `json:"name"`
	State       string            `json:"state"`
	DateCreated rfctime.RFC3339   `json:"date_created"`
	DateUpdated rfctime.RFC3339   `json:"date_updated"`
	Machine     *machines.Summary `json:"machine"`
}

func (d Detail) Equal(o Detail) bool {
	if (d.Machine == nil) != (o.Machine == nil) {
		return false
	}
	if d.Machine != nil && !d.Machine.Equal(*o.Machine) {
		return false
	}
	return d.Id == o.Id &&
		d.Name == o.Name &&
		d.State == o.State &&
		d.DateCreated.Equal(o.DateCreated) &&
		d.DateUpdated.Equal(o.DateUpdated)
}

func ComposeDetail(d domain.SimulationDetail) Detail {
	var machine *machines.Summary
	if d.Machine != nil {
		m := machines.ComposeSummary(*d.Machine)
		machine = &m
	}
	return Detail{
		Id:          d.Id,
		Name:        d.Name,
		State:       string(d.State),
		DateCreated: rfctime.New(d.DateCreated),
		DateUpdated: rfctime.New(d.DateUpdated),
		Machine:     machine,
	}
}

// Created is the response body for successful registration.
type Created struct {
	OK      bool   `json:"OK"`
	Message string `json:"message"`
	Id      int    `json:"id"`
}

func pointerEqual[T comparable](a, b *T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}
