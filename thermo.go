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

import "math"

// SatVaporPressure calculates the saturation water vapor pressure
// over a liquid water surface [Pa] when given the air temperature
// T [K], using the Goff (1957) formula. The temperature is floored
// at 180 K so that masked or fill-value inputs do not produce
// floating-point exceptions.
func SatVaporPressure(T float64) float64 {
	zt := math.Max(T, tFloor)
	ztr := tTriple / zt
	return 100. * math.Pow(10.,
		10.79574*(1.-ztr)-
			5.028*math.Log10(zt/tTriple)+
			1.50475e-4*(1.-math.Pow(10., -8.2969*(zt/tTriple-1.)))+
			0.42873e-3*(math.Pow(10., 4.76955*(1.-ztr))-1.)+
			0.78614)
}

// SatVaporPressureIce calculates the saturation water vapor pressure
// over an ice surface [Pa] when given the air temperature T [K],
// using the Goff-Gratch ice formula.
func SatVaporPressureIce(T float64) float64 {
	zt := math.Max(T, tFloor)
	ztr := tTriple / zt
	return 100. * math.Pow(10.,
		-9.09718*(ztr-1.)-
			3.56654*math.Log10(ztr)+
			0.876793*(1.-1./ztr)+
			math.Log10(6.1071))
}

// SatSpecificHumidity calculates the specific humidity at saturation
// [kg/kg] over liquid water when given the temperature T [K] and air
// pressure P [Pa].
func SatSpecificHumidity(T, P float64) float64 {
	es := SatVaporPressure(T)
	return ε0 * es / (P - (1.-ε0)*es)
}

// SatSpecificHumidityIce calculates the specific humidity at
// saturation [kg/kg] over ice when given the temperature T [K] and
// air pressure P [Pa].
func SatSpecificHumidityIce(T, P float64) float64 {
	es := SatVaporPressureIce(T)
	return ε0 * es / (P - (1.-ε0)*es)
}

// VirtualTemperature calculates the virtual temperature [K] when
// given the temperature T [K] and specific humidity q [kg/kg]. With
// q = 0 it returns T exactly.
func VirtualTemperature(T, q float64) float64 {
	return T * (1. + rctv0*q)
}

// LatentHeatVaporization calculates the latent heat of vaporization
// of water [J/kg] when given the temperature T [K].
func LatentHeatVaporization(T float64) float64 {
	zt := math.Max(T, tFloor)
	return (2.501 - 0.00237*(zt-t0)) * 1e6
}

// SpecificHeatMoistAir calculates the specific heat of moist air at
// constant pressure [J/(kg K)] when given the specific humidity
// q [kg/kg].
func SpecificHeatMoistAir(q float64) float64 {
	return cpDry*(1.-q) + cpVap*q
}

// MoistAdiabaticLapseRate calculates the moist adiabatic temperature
// lapse rate [K/m] when given the temperature T [K] and specific
// humidity q [kg/kg]. Inputs are floored (T at 180 K, q at 1e-6
// kg/kg) so that the result stays finite over masked grid cells.
func MoistAdiabaticLapseRate(T, q float64) float64 {
	zt := math.Max(T, tFloor)
	zq := math.Max(q, dMin)
	zw := zq / (1. - zq) // mixing ratio
	l := LatentHeatVaporization(zt)
	return g * (1. + l*zw/(rd*zt)) /
		(cpDry + l*l*zw*ε0/(rd*zt*zt))
}

// AirDensity calculates the density of moist air [kg/m3] from the
// ideal gas law using virtual temperature, when given temperature
// T [K], specific humidity q [kg/kg], and pressure P [Pa]. The
// result is floored at 0.8 kg/m3 to suppress nonphysical values.
func AirDensity(T, q, P float64) float64 {
	zt := math.Max(T, tFloor)
	ρ := P / (rd * VirtualTemperature(zt, q))
	return math.Max(ρ, ρFloor)
}

// KinematicViscosityAir calculates the kinematic viscosity of air
// [m2/s] when given the temperature T [K], using the polynomial fit
// of Andreas (1989).
func KinematicViscosityAir(T float64) float64 {
	tc := math.Max(T, tFloor) - t0
	return 1.326e-5 * (1. + 6.542e-3*tc + 8.301e-6*tc*tc -
		4.84e-9*tc*tc*tc)
}

// BulkRichardsonNumber calculates the bulk Richardson number [-] of
// the air layer between the surface and height Δz [m] when given the
// surface temperature Ts [K], the air potential temperature θa [K]
// at Δz, the surface and air specific humidities qs and qa [kg/kg],
// and the wind speed U [m/s] at Δz.
//
// The mean layer virtual temperature is estimated with exactly two
// fixed-point refinements of the layer-mean moist adiabatic lapse
// rate before the standard Ri = g Δθv Δz / (Tv U²) formula is
// applied. The caller must guarantee U > 0; there is no internal
// wind floor, so U = 0 yields ±Inf.
func BulkRichardsonNumber(Δz, Ts, θa, qs, qa, U float64) float64 {
	qm := 0.5 * (qa + qs)
	// Two correction passes for the layer-mean absolute temperature.
	tm := 0.5 * (Ts + θa - MoistAdiabaticLapseRate(θa, qm)*Δz)
	tm = 0.5 * (Ts + θa - MoistAdiabaticLapseRate(tm, qm)*Δz)
	dθv := VirtualTemperature(θa, qa) - VirtualTemperature(Ts, qs)
	return g * dθv * Δz / (VirtualTemperature(tm, qm) * U * U)
}
