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

// Package ncar contains the NCAR bulk air-sea flux parameterization
// of Large and Yeager (2009), developed for forcing ocean-only
// models (the CORE forcing protocol).
package ncar

import "math"

const (
	κ = 0.4 // Von Kármán constant

	// un10Floor keeps the neutral drag polynomial finite at calm
	// winds.
	un10Floor = 0.5 // m/s
)

// Scheme fulfils the github.com/hamersu9t/aerobulk.Scheme interface.
type Scheme struct{}

// New returns the NCAR (Large and Yeager) bulk parameterization.
func New() Scheme { return Scheme{} }

// Name returns "ncar".
func (Scheme) Name() string { return "ncar" }

// PsiM is the integrated similarity function for momentum: Paulson
// (1970) when unstable, the linear -5ζ correction when stable
// (ζ ≥ 0).
func (Scheme) PsiM(ζ float64) float64 {
	if ζ < 0. {
		x := math.Sqrt(math.Sqrt(1. - 16.*ζ))
		return 2.*math.Log((1.+x)/2.) + math.Log((1.+x*x)/2.) -
			2.*math.Atan(x) + math.Pi/2.
	}
	return -5. * ζ
}

// PsiH is the integrated similarity function for heat and moisture,
// with the same branch convention as PsiM.
func (Scheme) PsiH(ζ float64) float64 {
	if ζ < 0. {
		x := math.Sqrt(1. - 16.*ζ)
		return 2. * math.Log((1.+x)/2.)
	}
	return -5. * ζ
}

// Roughness derives the roughness lengths from the Large and Yeager
// neutral 10-m transfer coefficients: the drag polynomial gives z0,
// and the stability-split scalar coefficients give z0t and z0q. The
// kinematic viscosity is unused.
func (Scheme) Roughness(ustar, un10, ζ, _ float64) (z0, z0t, z0q float64) {
	u := math.Max(un10, un10Floor)
	cdn := (2.7/u + 0.142 + 0.0764*u) * 1e-3
	sqrtCdn := math.Sqrt(cdn)
	z0 = 10. * math.Exp(-κ/sqrtCdn)

	// Ch/Ce neutral coefficients (Large and Yeager 2009, Table 1).
	chn := 0.0327 * sqrtCdn // unstable
	if ζ >= 0. {
		chn = 0.0180 * sqrtCdn
	}
	cen := 0.0346 * sqrtCdn

	z0t = 10. * math.Exp(-κ*sqrtCdn/chn)
	z0q = 10. * math.Exp(-κ*sqrtCdn/cen)
	return z0, z0t, z0q
}

// GustParams returns zero gustiness: the Large and Yeager scheme has
// no convective wind augmentation.
func (Scheme) GustParams() (float64, float64) { return 0., 0. }
