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

// Package aerobulk calculates turbulent air-sea fluxes of momentum,
// sensible heat, and latent heat using Monin-Obukhov similarity theory.
// The core of the package is an iterative stability-correction solver
// that jointly estimates the turbulent scaling parameters (u*, t*, q*),
// the surface roughness lengths, the Obukhov-length stability parameter,
// and the gustiness-augmented bulk wind speed. Interchangeable bulk
// parameterization variants (ECMWF, COARE, NCAR) are in the
// science/bulk subdirectory.
package aerobulk

// physical constants
const (
	g = 9.80665 // m/s2, gravitational acceleration
	κ = 0.4     // Von Kármán constant

	rd = 287.05  // J/(kg K), specific gas constant for dry air
	rv = 461.495 // J/(kg K), specific gas constant for water vapor
	ε0 = rd / rv // molar mass ratio of water vapor to dry air

	// rctv0 converts a specific humidity to a virtual temperature
	// excess: Tv = T (1 + rctv0 q).
	rctv0 = (1. - ε0) / ε0

	cpDry = 1005. // J/(kg K), specific heat of dry air
	cpVap = 1860. // J/(kg K), specific heat of water vapor

	// lSub is the latent heat of sublimation of ice [J/kg],
	// treated as constant over the relevant temperature range.
	lSub = 2.834e6

	σ = 5.670367e-8 // W/(m2 K4), Stefan-Boltzmann constant

	// tTriple is the triple point temperature of water [K].
	tTriple = 273.16
	t0      = 273.15 // K, 0 °C

	// tFloor is the lower temperature bound applied before evaluating
	// thermodynamic formulas, so that masked or fill-value inputs
	// cannot trigger floating-point exceptions.
	tFloor = 180. // K

	// ρFloor suppresses nonphysical air densities on degenerate input.
	ρFloor = 0.8 // kg/m3
)

// numerical guards for the similarity solver
const (
	// ζ (z/L) is kept within ±ζMax to avoid overflow in the
	// stability functions.
	ζMax = 200.

	// Roughness lengths are kept within (z0Min, z0Max] so that
	// log-profile terms stay finite.
	z0Min = 1e-9 // m
	z0Max = 1e-3 // m

	// uBlkMin is the bulk wind speed floor; the drag coefficient is
	// singular at zero wind.
	uBlkMin = 0.2 // m/s

	// uStarMin bounds the friction velocity away from zero to avoid
	// division singularities in the roughness closures.
	uStarMin = 1e-4 // m/s

	// dMin is the minimum magnitude enforced on air-sea temperature
	// and humidity differences.
	dMin = 1e-6
)

// AirState is the near-surface atmospheric state at the measurement
// heights: potential temperature Theta [K] and specific humidity
// Q [kg/kg] at height zt, and scalar wind speed Wind [m/s] at
// height zu.
type AirState struct {
	Theta float64 // K
	Q     float64 // kg/kg
	Wind  float64 // m/s
}

// SurfaceState is the sea-surface condition: temperature SST [K]
// and saturation specific humidity SSQ [kg/kg] at the surface.
// SSQ is typically 98% of the saturation specific humidity at SST
// to account for salinity.
type SurfaceState struct {
	SST float64 // K
	SSQ float64 // kg/kg
}

// Input is the state of a single observation point passed to Solve.
type Input struct {
	Zt float64 // m, measurement height for temperature and humidity
	Zu float64 // m, measurement height for wind

	Surface SurfaceState
	Air     AirState
}

// Output holds the converged similarity solution for one observation
// point.
type Output struct {
	// Bulk transfer coefficients for momentum, sensible heat, and
	// latent heat [-].
	Cd, Ch, Ce float64

	// Potential temperature [K] and specific humidity [kg/kg]
	// adjusted to the wind measurement height zu.
	ThetaZu, QZu float64

	// UBlk is the bulk wind speed including the gustiness
	// contribution [m/s]. It is never less than 0.2 m/s.
	UBlk float64

	// Turbulent scaling parameters.
	UStar float64 // m/s
	TStar float64 // K
	QStar float64 // kg/kg

	// Roughness lengths for momentum, heat, and moisture [m].
	Z0, Z0t, Z0q float64

	// Zeta is the stability parameter zu/L [-] and InvObukhov is the
	// inverse Obukhov length 1/L [1/m].
	Zeta       float64
	InvObukhov float64

	// UN10 is the equivalent neutral-stability wind speed at 10 m [m/s].
	UN10 float64

	// Surface is the sea-surface state after any skin correction;
	// identical to the input surface state when no correction is
	// applied.
	Surface SurfaceState

	// Skin is the updated warm-layer recurrence state to pass into
	// the next time-step invocation. Meaningful only when a skin
	// correction was configured.
	Skin SkinState
}
