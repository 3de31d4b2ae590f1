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
	"github.com/ctessum/atmos/acm2"
	"github.com/ctessum/unit"
)

// SurfaceType selects the constants that differ between open-ocean
// and sea-ice surfaces: the latent heat (vaporization vs.
// sublimation), the longwave emissivity, and the shortwave albedo.
type SurfaceType int

const (
	// Ocean is an open-water surface.
	Ocean SurfaceType = iota
	// Ice is a sea-ice surface.
	Ice
)

// radiative surface constants
const (
	εOcean = 0.97  // longwave emissivity of open water [-]
	εIce   = 0.985 // longwave emissivity of sea ice [-]

	albedoOcean = 0.066 // broadband shortwave albedo of open water [-]
	albedoIce   = 0.60  // broadband shortwave albedo of sea ice [-]
)

// unit dimensions for dimensioned flux results
var (
	pascals = unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: -1,
		unit.TimeDim:   -2}
	wattsPerM2 = unit.Dimensions{
		unit.MassDim: 1,
		unit.TimeDim: -3}
)

// FluxResult holds the turbulent fluxes for one observation point.
// Heat fluxes are positive upward (ocean to atmosphere).
type FluxResult struct {
	// Tau is the wind stress magnitude [N/m2].
	Tau float64
	// SensibleHeat is the turbulent sensible heat flux [W/m2].
	SensibleHeat float64
	// LatentHeat is the turbulent latent heat flux [W/m2].
	LatentHeat float64
	// Evaporation is the water mass flux [kg/(m2 s)].
	Evaporation float64
}

// Fluxes combines the converged transfer coefficients with the
// air-sea state differences to produce the wind stress and the
// sensible and latent heat fluxes, when given the solver input and
// output for a point, the sea-level pressure slp [Pa], and the
// surface type. The surface state in out reflects any skin
// correction, so the fluxes are consistent with the corrected
// surface.
func Fluxes(in Input, out Output, slp float64, sfc SurfaceType) FluxResult {
	ρ := AirDensity(out.ThetaZu, out.QZu, slp)
	cp := SpecificHeatMoistAir(out.QZu)
	lx := LatentHeatVaporization(out.Surface.SST)
	if sfc == Ice {
		lx = lSub
	}
	evap := ρ * out.Ce * out.UBlk * (out.Surface.SSQ - out.QZu)
	return FluxResult{
		Tau:          ρ * out.Cd * out.UBlk * in.Air.Wind,
		SensibleHeat: ρ * cp * out.Ch * out.UBlk * (out.Surface.SST - out.ThetaZu),
		LatentHeat:   lx * evap,
		Evaporation:  evap,
	}
}

// TauUnit returns the wind stress as a dimensioned quantity [Pa].
func (f FluxResult) TauUnit() *unit.Unit {
	return unit.New(f.Tau, pascals)
}

// SensibleHeatUnit returns the sensible heat flux as a dimensioned
// quantity [W/m2].
func (f FluxResult) SensibleHeatUnit() *unit.Unit {
	return unit.New(f.SensibleHeat, wattsPerM2)
}

// LatentHeatUnit returns the latent heat flux as a dimensioned
// quantity [W/m2].
func (f FluxResult) LatentHeatUnit() *unit.Unit {
	return unit.New(f.LatentHeat, wattsPerM2)
}

// NetLongwave calculates the net longwave radiative flux into the
// surface [W/m2, positive downward] when given the surface
// temperature Ts [K], the downwelling longwave radiation lwDown
// [W/m2], and the surface type.
func NetLongwave(Ts, lwDown float64, sfc SurfaceType) float64 {
	ε := εOcean
	if sfc == Ice {
		ε = εIce
	}
	return ε * (lwDown - σ*Ts*Ts*Ts*Ts)
}

// NetShortwave calculates the net shortwave radiative flux absorbed
// by the surface [W/m2] when given the downwelling shortwave
// radiation swDown [W/m2] and the surface type.
func NetShortwave(swDown float64, sfc SurfaceType) float64 {
	α := albedoOcean
	if sfc == Ice {
		α = albedoIce
	}
	return (1. - α) * swDown
}

// ObukhovLengthFromFlux is a diagnostic conversion of a sensible
// heat flux [W/m2, positive upward], air density ρ [kg/m3], air
// temperature T [K], and friction velocity ustar [m/s] back to a
// Monin-Obukhov length [m], for consumers of boundary-layer mixing
// parameterizations. The result follows the standard meteorological
// sign convention (L < 0 for unstable conditions), which is the
// negative of the Pleim (2007) convention used by the underlying
// calculation. It neglects the humidity contribution to buoyancy,
// so it agrees with the solver's InvObukhov only approximately.
func ObukhovLengthFromFlux(sensibleHeat, ρ, T, ustar float64) float64 {
	return -acm2.ObukhovLen(sensibleHeat, ρ, T, ustar)
}
