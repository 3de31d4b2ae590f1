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

// Scheme is an interface for bulk air-sea flux parameterizations.
// The similarity solver runs the same fixed-point iteration for
// every scheme; a Scheme supplies the empirical closures that
// differ between parameterization families (ECMWF, COARE, NCAR).
//
// The stable branch of the stability functions applies for ζ ≥ 0:
// zero is stable by convention, and all schemes must follow that
// convention so that the neutral limit is handled identically
// everywhere.
type Scheme interface {
	// Name returns the name of the parameterization.
	Name() string

	// PsiM returns the integrated universal similarity function for
	// momentum [-] at stability parameter ζ = z/L.
	PsiM(ζ float64) float64

	// PsiH returns the integrated universal similarity function for
	// heat and moisture [-] at stability parameter ζ = z/L.
	PsiH(ζ float64) float64

	// Roughness returns the momentum, heat, and moisture roughness
	// lengths [m] when given the friction velocity ustar [m/s], the
	// neutral-stability 10-m wind speed un10 [m/s], the stability
	// parameter ζ [-], and the kinematic viscosity of air ν [m2/s].
	// The solver clips the returned values to a safe range, so
	// implementations need not guard their closures.
	Roughness(ustar, un10, ζ, ν float64) (z0, z0t, z0q float64)

	// GustParams returns the gustiness coefficient β [-] and the
	// convective boundary layer depth zi [m] used to convert the
	// convective velocity scale into a wind speed augmentation.
	// A scheme without gustiness returns β = 0.
	GustParams() (β, zi float64)
}
