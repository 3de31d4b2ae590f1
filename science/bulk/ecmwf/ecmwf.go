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

// Package ecmwf contains the bulk air-sea flux parameterization used
// in the ECMWF Integrated Forecasting System (IFS documentation,
// Part IV: Physical processes). It is the default scheme of this
// module.
package ecmwf

import "math"

// empirical coefficients
const (
	κ = 0.4     // Von Kármán constant
	g = 9.80665 // m/s2

	charnock = 0.018 // Charnock coefficient [-]
	αM       = 0.11  // smooth-flow coefficient for z0 [-]
	αH       = 0.40  // z0t = αH ν/u* [-]
	αQ       = 0.62  // z0q = αQ ν/u* [-]

	β  = 1.    // gustiness coefficient [-]
	zi = 1000. // convective boundary layer depth [m]

	// ζClip limits the stable-branch stability parameter to avoid
	// overflow in the exponential correction.
	ζClip = 5.
)

// Scheme fulfils the github.com/hamersu9t/aerobulk.Scheme interface.
type Scheme struct{}

// New returns the ECMWF bulk parameterization.
func New() Scheme { return Scheme{} }

// Name returns "ecmwf".
func (Scheme) Name() string { return "ecmwf" }

// PsiM is the integrated similarity function for momentum. The
// unstable branch (ζ < 0) is the Paulson (1970) form; the stable
// branch (ζ ≥ 0, zero inclusive) is the exponential-decay
// correction of Beljaars and Holtslag (1991) as used in the IFS.
func (Scheme) PsiM(ζ float64) float64 {
	if ζ < 0. {
		x := math.Sqrt(math.Sqrt(1. - 16.*ζ))
		return 2.*math.Log((1.+x)/2.) + math.Log((1.+x*x)/2.) -
			2.*math.Atan(x) + math.Pi/2.
	}
	z := math.Min(ζ, ζClip)
	const a, b, c, d = 1., 2. / 3., 5., 0.35
	return -b*(z-c/d)*math.Exp(-d*z) - a*z - b*c/d
}

// PsiH is the integrated similarity function for heat and moisture,
// with the same stable/unstable branch convention as PsiM.
func (Scheme) PsiH(ζ float64) float64 {
	if ζ < 0. {
		x := math.Sqrt(1. - 16.*ζ)
		return 2. * math.Log((1.+x)/2.)
	}
	z := math.Min(ζ, ζClip)
	const a, b, c, d = 1., 2. / 3., 5., 0.35
	return -b*(z-c/d)*math.Exp(-d*z) -
		math.Pow(1.+b*a*z, 1.5) - b*c/d + 1.
}

// Roughness returns the IFS roughness closures: a Charnock relation
// plus a viscous term for momentum, and viscosity-scaled lengths for
// heat and moisture.
func (Scheme) Roughness(ustar, _, _, ν float64) (z0, z0t, z0q float64) {
	z0 = charnock*ustar*ustar/g + αM*ν/ustar
	z0t = αH * ν / ustar
	z0q = αQ * ν / ustar
	return z0, z0t, z0q
}

// GustParams returns the IFS gustiness coefficient and convective
// boundary layer depth.
func (Scheme) GustParams() (float64, float64) { return β, zi }
