// Package sim provides the core of the FPQA middleware: a physics-constrained
// intermediate representation, a validator, a topological router, a
// continuous-operation simulator, and the telemetry bus that connects them.
//
// # Reading Guide
//
// Start with these packages to understand the system:
//   - sim/ir: the typed schema (atoms, zones, registers, waveforms,
//     operations, jobs) with per-entity structural invariants.
//   - sim/physics: pure, dependency-free heating/fidelity/loss/decoder models.
//   - sim/validator: composes ir+physics to validate a Job before execution.
//   - sim/router: circuit-to-grid placement minimizing transport + crossing cost.
//   - sim/simulator: the per-client continuous-operation loop.
//   - sim/telemetry: the in-process pub/sub bus routing frames to callers.
//
// sim itself holds only the determinism primitive shared by every
// subsystem: PartitionedRNG.
package sim
