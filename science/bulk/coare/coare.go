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

// Package coare contains the COARE 3.0 bulk air-sea flux
// parameterization (Fairall et al., 2003).
package coare

import "math"

const (
	κ = 0.4     // Von Kármán constant
	g = 9.80665 // m/s2

	β  = 1.2  // gustiness coefficient [-]
	zi = 600. // convective boundary layer depth [m]
)

// Scheme fulfils the github.com/hamersu9t/aerobulk.Scheme interface.
type Scheme struct{}

// New returns the COARE 3.0 bulk parameterization.
func New() Scheme { return Scheme{} }

// Name returns "coare".
func (Scheme) Name() string { return "coare" }

// PsiM is the integrated similarity function for momentum. The
// unstable branch blends the Kansas form with the convective form of
// Fairall et al. (1996); the stable branch (ζ ≥ 0) is the Beljaars
// and Holtslag (1991) expression with the COARE exponential guard.
func (Scheme) PsiM(ζ float64) float64 {
	if ζ < 0. {
		x := math.Sqrt(math.Sqrt(1. - 15.*ζ))
		ψk := 2.*math.Log((1.+x)/2.) + math.Log((1.+x*x)/2.) -
			2.*math.Atan(x) + math.Pi/2.
		y := math.Cbrt(1. - 10.15*ζ)
		ψc := 1.5*math.Log((1.+y+y*y)/3.) -
			math.Sqrt(3.)*math.Atan((1.+2.*y)/math.Sqrt(3.)) +
			math.Pi/math.Sqrt(3.)
		f := ζ * ζ / (1. + ζ*ζ)
		return (1.-f)*ψk + f*ψc
	}
	zc := math.Min(50., 0.35*ζ)
	return -((1. + ζ) + 0.6667*(ζ-14.28)*math.Exp(-zc) + 8.525)
}

// PsiH is the integrated similarity function for heat and moisture,
// with the same branch convention and Kansas/convective blending as
// PsiM.
func (Scheme) PsiH(ζ float64) float64 {
	if ζ < 0. {
		x := math.Sqrt(1. - 15.*ζ)
		ψk := 2. * math.Log((1.+x)/2.)
		y := math.Cbrt(1. - 34.15*ζ)
		ψc := 1.5*math.Log((1.+y+y*y)/3.) -
			math.Sqrt(3.)*math.Atan((1.+2.*y)/math.Sqrt(3.)) +
			math.Pi/math.Sqrt(3.)
		f := ζ * ζ / (1. + ζ*ζ)
		return (1.-f)*ψk + f*ψc
	}
	zc := math.Min(50., 0.35*ζ)
	return -(math.Pow(1.+2.*ζ/3., 1.5) +
		0.6667*(ζ-14.28)*math.Exp(-zc) + 8.525)
}

// Roughness returns the COARE 3.0 closures: a wind-speed-dependent
// Charnock relation for momentum and a roughness-Reynolds-number
// scaling for the scalar lengths, which are equal for heat and
// moisture.
func (Scheme) Roughness(ustar, un10, _, ν float64) (z0, z0t, z0q float64) {
	z0 = charnockParam(un10)*ustar*ustar/g + 0.11*ν/ustar
	rr := z0 * ustar / ν
	z0t = math.Min(1.1e-4, 5.5e-5*math.Pow(rr, -0.6))
	return z0, z0t, z0t
}

// GustParams returns the COARE gustiness coefficient and convective
// boundary layer depth.
func (Scheme) GustParams() (float64, float64) { return β, zi }

// charnockParam is the wind-speed-dependent Charnock coefficient of
// COARE 3.0: 0.011 up to 10 m/s, ramping linearly to 0.018 at
// 18 m/s.
func charnockParam(un10 float64) float64 {
	switch {
	case un10 <= 10.:
		return 0.011
	case un10 >= 18.:
		return 0.018
	default:
		return 0.011 + (0.018-0.011)*(un10-10.)/8.
	}
}
