/*
Copyright © 2018 the AeroBulk authors.
This file is part of AeroBulk.

AeroBulk is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AeroBulk is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AeroBulk.  If not, see <http://www.gnu.org/licenses/>.
*/

package aerobulk

import (
	"fmt"
	"math"
)

// SkinState is the persistent per-point state of a cool-skin /
// warm-layer correction. It is a genuine time-stepped recurrence:
// the state after one solver call must be passed back in on the
// next call for the same point. The zero value is the documented
// initial state for the first time step.
type SkinState struct {
	// DeltaT is the accumulated warm-layer temperature
	// perturbation [K] relative to the bulk SST measurement.
	DeltaT float64
	// Depth is the current warm-layer depth [m].
	Depth float64
}

// SkinInput is the information handed to a SkinCorrector during
// each solver sweep.
type SkinInput struct {
	// Surface is the current (possibly already corrected)
	// sea-surface state.
	Surface SurfaceState

	// QNonSolar is the net non-solar heat flux into the ocean
	// [W/m2] (longwave + sensible + latent, positive downward)
	// computed from the current iteration state.
	QNonSolar float64
	// SolarNet is the net downwelling solar radiation absorbed by
	// the ocean [W/m2].
	SolarNet float64
	// Tau is the wind stress magnitude [N/m2].
	Tau float64
	// UStar is the current friction velocity [m/s].
	UStar float64

	// State is the warm-layer state carried over from the previous
	// time step (or previous sweep within this call).
	State SkinState
}

// A SkinCorrector adjusts the sea-surface temperature and saturation
// humidity for cool-skin and warm-layer effects. It is invoked once
// per solver sweep with the current flux estimates and must return
// the corrected surface state along with the updated recurrence
// state. Implementations live outside this package; the solver only
// defines the contract.
type SkinCorrector func(SkinInput) (SurfaceState, SkinState)

// SkinCorrection configures the optional cool-skin / warm-layer hook
// of the solver. All radiative inputs are required: requesting the
// correction without them is a configuration error reported at call
// time, before iteration begins.
type SkinCorrection struct {
	// Correct performs the correction.
	Correct SkinCorrector

	// SolarNet is the net downwelling solar radiation [W/m2].
	SolarNet float64
	// LongwaveDown is the downwelling longwave radiation [W/m2].
	LongwaveDown float64
	// SLP is the sea-level pressure [Pa], needed for the air
	// density entering the flux estimates.
	SLP float64

	// State is the warm-layer state from the previous time step.
	State SkinState
}

// valid checks that the correction is fully configured.
func (s *SkinCorrection) valid() error {
	if s.Correct == nil {
		return fmt.Errorf("aerobulk: skin correction requested without a corrector function")
	}
	if math.IsNaN(s.SolarNet) || math.IsNaN(s.LongwaveDown) {
		return fmt.Errorf("aerobulk: skin correction requires finite radiative fluxes (solar=%g, longwave=%g)",
			s.SolarNet, s.LongwaveDown)
	}
	if !(s.SLP > 0.) {
		return fmt.Errorf("aerobulk: skin correction requires a positive sea-level pressure, got %g Pa", s.SLP)
	}
	return nil
}
