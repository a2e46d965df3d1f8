// Package standards holds static reference data for process piping: pipe
// schedule tables, material roughness and mechanical properties, fitting
// loss coefficients, recommended service velocities, and pump efficiencies.
// Values are representative of ASME/ASTM catalog data.
package standards
