package domain

// domain package contains the Domain Models and Interfaces for the simreg application.
//
// `domain/registry` package exposes the root object for simreg.
// Entrypoints of applications should instantiate the RegistryDatabase and use it to interact with the domain.
//
// `domain/ENTITY.go` has high-level entities (Domain Model types) and functions.
// For example, `domain/machine.go` contains the `Machine` entity.
//
// `domain/ENTITY/db` directory contains the RDB representation of the domain entity:
// the client interface in `domain/ENTITY/db/ENTITY.go`, the Postgres implementation
// under `domain/ENTITY/db/postgres` and a mock for testing under `domain/ENTITY/db/mock`.
//
// # Entities
//
// Core entities in the domain are:
//
// - `machine`: A GPU machine, typically rented, where training runs are hosted.
// Machines have a unique name and a location.
//
// - `simulation`: An ML training run. Simulations have a lifecycle state
// (pending, running or finished) and may be bound to the machine hosting them.
//
// - `lossdata`: Samples of the loss curve of a simulation, recorded as
// (seconds, loss) pairs. The series of a simulation shows its convergence.
//
// And others:
//
// - `schema`: Creates the tables and the date_updated trigger when they do not exist.
