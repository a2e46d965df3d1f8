// Package fluids implements the low-level flow correlations other
// equipment models build on: Reynolds number, Colebrook–White friction
// factor, Darcy–Weisbach and Fanning pressure drop, Hazen–Williams head
// loss, flow/velocity duality, optimum pipe diameter, and pump power.
// Every function takes explicit typed quantities and returns a single
// typed result.
package fluids
