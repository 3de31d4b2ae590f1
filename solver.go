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

// Solve jointly estimates the Monin-Obukhov scaling parameters
// (u*, t*, q*), the roughness lengths (z0, z0t, z0q), the stability
// parameter ζ = zu/L, and the gustiness-augmented bulk wind speed for
// a single observation point, and converts the converged solution
// into the bulk transfer coefficients Cd, Ch, and Ce.
//
// The solver performs exactly nIter fixed-point sweeps; there is no
// convergence tolerance. The cost and the output are therefore
// deterministic for given inputs, and repeated calls with identical
// arguments are bit-identical. Empirically 5-20 sweeps suffice for
// oceanic conditions.
//
// Physically implausible inputs never cause a runtime error: all
// intermediate quantities are clamped to safe numeric ranges so that
// masked or fill-value data flow through without floating-point
// exceptions. Callers needing strict validation must pre-filter
// their inputs. The returned error is non-nil only for caller
// contract violations: nIter ≤ 0, non-positive measurement heights,
// or an incompletely configured skin correction.
//
// skin may be nil, in which case the sea-surface state is held fixed
// for the whole iteration.
func Solve(s Scheme, in Input, nIter int, skin *SkinCorrection) (Output, error) {
	if nIter <= 0 {
		return Output{}, fmt.Errorf("aerobulk: iteration count must be positive, got %d", nIter)
	}
	if !(in.Zt > 0.) || !(in.Zu > 0.) {
		return Output{}, fmt.Errorf("aerobulk: measurement heights must be positive, got zt=%g, zu=%g", in.Zt, in.Zu)
	}
	if skin != nil {
		if err := skin.valid(); err != nil {
			return Output{}, err
		}
	}

	zt, zu := in.Zt, in.Zu
	sst, ssq := in.Surface.SST, in.Surface.SSQ
	θzt, qzt, wind := in.Air.Theta, in.Air.Q, in.Air.Wind

	ν := KinematicViscosityAir(θzt)
	β, zi := s.GustParams()
	var skinState SkinState
	if skin != nil {
		skinState = skin.State
	}

	θzu, qzu := θzt, qzt
	dθ := guardDiff(θzu - sst)
	dq := guardDiff(qzu - ssq)

	// First guess: neutral log profile with z0 ≈ 1e-4 m, and a
	// 0.5 m/s gust contribution.
	ublk := math.Max(math.Sqrt(wind*wind+0.25), uBlkMin)
	ustar := math.Max(0.035*wind*math.Log(10./1e-4)/math.Log(zu/1e-4), uStarMin)
	un10 := ustar / κ * math.Log(10./1e-4)
	z0, z0t, z0q := clipRoughness(s.Roughness(ustar, un10, 0., ν))

	// Initial stability parameter from the bulk Richardson number,
	// with distinct closed forms for the unstable and stable cases.
	ri := BulkRichardsonNumber(zu, sst, θzu, ssq, qzu, ublk)
	fm := math.Log(zu / z0)
	fh := math.Log(zu / z0t)
	zc := κ * κ / (fm * fh)
	var ζ float64
	if ri < 0. {
		ζ = zc * ri / (1. - ri*0.004*zi*β*β*β/zu)
	} else {
		ζ = zc * ri * (1. + 3.*ri/zc)
	}
	ζ = clamp(ζ, -ζMax, ζMax)

	// Stability-corrected first guess of the scaling parameters.
	ζt := ζ * zt / zu
	ustar = math.Max(ublk*κ/(math.Log(zu/z0)-s.PsiM(ζ)), uStarMin)
	tstar := dθ * κ / (math.Log(zt/z0t) - s.PsiH(ζt))
	qstar := dq * κ / (math.Log(zt/z0q) - s.PsiH(ζt))

	// Reconcile θ and q to the wind measurement height before
	// entering the loop; repeated every sweep because z0t, z0q, and
	// ζ change each time.
	if zt != zu {
		θzu, qzu = adjustToZu(s, θzt, qzt, tstar, qstar, zt, zu, ζ)
		dθ = guardDiff(θzu - sst)
		dq = guardDiff(qzu - ssq)
	}

	fm = math.Log(zu/z0) - s.PsiM(ζ) + s.PsiM(ζ*z0/zu)
	fh = math.Log(zu/z0t) - s.PsiH(ζ) + s.PsiH(ζ*z0t/zu)
	fq := math.Log(zu/z0q) - s.PsiH(ζ) + s.PsiH(ζ*z0q/zu)

	for it := 0; it < nIter; it++ {
		// Bulk Richardson number with the current state.
		ri = BulkRichardsonNumber(zu, sst, θzu, ssq, qzu, ublk)

		// Stability parameter from the profile-function ratio of the
		// previous sweep.
		ζ = clamp(ri*fm*fm/fh, -ζMax, ζMax)

		// Friction velocity at the updated stability.
		ustar = math.Max(ublk*κ/
			(math.Log(zu/z0)-s.PsiM(ζ)+s.PsiM(ζ*z0/zu)), uStarMin)

		// Roughness lengths.
		un10 = ustar / κ * math.Log(10./z0)
		z0, z0t, z0q = clipRoughness(s.Roughness(ustar, un10, ζ, ν))

		// Gustiness-augmented bulk wind speed.
		ublk = bulkWind(wind, ustar, tstar, qstar, θzu, qzu, ζ, β, zi)

		// Height reconciliation.
		if zt != zu {
			θzu, qzu = adjustToZu(s, θzt, qzt, tstar, qstar, zt, zu, ζ)
			dθ = guardDiff(θzu - sst)
			dq = guardDiff(qzu - ssq)
		}

		// Log-profile functions and consistent scaling parameters.
		fm = math.Log(zu/z0) - s.PsiM(ζ) + s.PsiM(ζ*z0/zu)
		fh = math.Log(zu/z0t) - s.PsiH(ζ) + s.PsiH(ζ*z0t/zu)
		fq = math.Log(zu/z0q) - s.PsiH(ζ) + s.PsiH(ζ*z0q/zu)
		ustar = math.Max(ublk*κ/fm, uStarMin)
		tstar = dθ * κ / fh
		qstar = dq * κ / fq

		// Optional cool-skin / warm-layer correction. This is the
		// only place where state escapes the pure iteration: the
		// surface temperature and humidity are replaced for the
		// remainder of the loop.
		if skin != nil {
			ρ := AirDensity(θzu, qzu, skin.SLP)
			cp := SpecificHeatMoistAir(qzu)
			lv := LatentHeatVaporization(sst)
			qh := -ρ * cp * ustar * tstar // positive upward
			qe := -ρ * lv * ustar * qstar
			qlw := NetLongwave(sst, skin.LongwaveDown, Ocean)
			sfc, st := skin.Correct(SkinInput{
				Surface:   SurfaceState{SST: sst, SSQ: ssq},
				QNonSolar: qlw - qh - qe,
				SolarNet:  skin.SolarNet,
				Tau:       ρ * ustar * ustar,
				UStar:     ustar,
				State:     skinState,
			})
			skinState = st
			sst, ssq = sfc.SST, sfc.SSQ
			dθ = guardDiff(θzu - sst)
			dq = guardDiff(qzu - ssq)
		}
	}

	return Output{
		Cd:         κ * κ / (fm * fm),
		Ch:         κ * κ / (fm * fh),
		Ce:         κ * κ / (fm * fq),
		ThetaZu:    θzu,
		QZu:        qzu,
		UBlk:       ublk,
		UStar:      ustar,
		TStar:      tstar,
		QStar:      qstar,
		Z0:         z0,
		Z0t:        z0t,
		Z0q:        z0q,
		Zeta:       ζ,
		InvObukhov: ζ / zu,
		UN10:       ustar / κ * math.Log(10./z0),
		Surface:    SurfaceState{SST: sst, SSQ: ssq},
		Skin:       skinState,
	}, nil
}

// adjustToZu converts potential temperature and specific humidity
// from the measurement height zt to the wind measurement height zu
// using the difference of the heat similarity function at the two
// heights. Humidity is floored at zero.
func adjustToZu(s Scheme, θzt, qzt, tstar, qstar, zt, zu, ζ float64) (θzu, qzu float64) {
	ζt := ζ * zt / zu
	corr := math.Log(zt/zu) + s.PsiH(ζ) - s.PsiH(ζt)
	θzu = θzt - tstar/κ*corr
	qzu = math.Max(qzt-qstar/κ*corr, 0.)
	return θzu, qzu
}

// bulkWind augments the mean wind speed with a gustiness term
// proportional to the convective velocity scale w* = (Bf zi)^(1/3),
// active only in unstable conditions with a positive surface
// buoyancy flux. The result is floored to keep the drag coefficient
// finite at zero ambient wind.
func bulkWind(wind, ustar, tstar, qstar, θzu, qzu, ζ, β, zi float64) float64 {
	var ug float64
	if ζ < 0. && β > 0. {
		θv := VirtualTemperature(θzu, qzu)
		bf := -g / θv * ustar * (tstar + rctv0*θzu*qstar)
		if bf > 0. {
			ug = β * math.Cbrt(bf*zi)
		}
	}
	return math.Max(math.Sqrt(wind*wind+ug*ug), uBlkMin)
}

// guardDiff enforces a minimum magnitude on air-sea differences so
// that the scalar transfer coefficients stay finite when the air and
// sea states coincide.
func guardDiff(d float64) float64 {
	if math.Abs(d) < dMin {
		if math.Signbit(d) {
			return -dMin
		}
		return dMin
	}
	return d
}

func clipRoughness(z0, z0t, z0q float64) (float64, float64, float64) {
	return clipZ0(z0), clipZ0(z0t), clipZ0(z0q)
}

func clipZ0(z float64) float64 {
	return math.Min(math.Max(math.Abs(z), z0Min), z0Max)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
