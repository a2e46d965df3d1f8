// Package units provides typed physical scalars with validated construction
// and unit conversion. Every quantity stores its value in SI base units;
// constructors reject unknown unit strings and negative values for physical
// extents. Arithmetic is defined only between scalars of the same type.
package units
