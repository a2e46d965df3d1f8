// Package components provides fluid property models consumed by the
// pipeline engine: density, dynamic viscosity, and the named service type
// used for recommended-velocity checks. Properties are representative
// engineering values, not a substitute for a thermodynamic property
// package.
package components
