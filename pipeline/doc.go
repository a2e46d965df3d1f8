// Package pipeline models pipe networks and resolves flow through them.
//
// A Network is a tree of elements (pipes, fittings, pumps, equipment, or
// nested networks) composed in series or parallel blocks. The Engine takes
// an immutable Request describing the fluid and either a single pipe or a
// network, derives whichever of flow rate and velocity was not supplied,
// evaluates the topology recursively, and returns per-element velocity,
// Reynolds number, friction factor and pressure drop together with
// aggregate totals.
//
// Evaluation is deterministic and synchronous. A Request may be reused,
// but one Engine run is self-contained: all derived state lives in a
// per-run context, so concurrent runs need no external synchronization.
package pipeline
