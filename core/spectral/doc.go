// Package spectral normalizes manufacturer spectral tables onto the canonical
// 380 nm aligned, 1 nm spaced wavelength grid used by EDR consumers.
//
// Two entry points build a [DataSet]:
//
//   - [Normalize]: keyed calibration tables. The start wavelength is validated
//     and leading bands before 380 nm are dropped; coarser grids are resampled
//     with [SpragueResample].
//   - [FromGrid]: correlation matrices that are already 380–780 nm at 1 nm.
//
// A DataSet is immutable. Unit conversion is a property of the source and is
// applied with [DataSet.InWatts], which is idempotent.
package spectral
