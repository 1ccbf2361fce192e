package db

import (
	kloss "github.com/traininglab/simreg/pkg/domain/lossdata/db"
	kmach "github.com/traininglab/simreg/pkg/domain/machine/db"
	kschema "github.com/traininglab/simreg/pkg/domain/schema/db"
	ksim "github.com/traininglab/simreg/pkg/domain/simulation/db"
)

type RegistryDatabase interface {
	Machines() kmach.MachineInterface
	Simulations() ksim.SimulationInterface
	LossData() kloss.LossDataInterface
	Schema() kschema.SchemaInterface
	Close() error
}
