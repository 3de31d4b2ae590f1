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
	"math"
	"testing"
)

func TestSatVaporPressure(t *testing.T) {
	// Goff formula at 25 °C; the accepted value is ~3169 Pa.
	es := SatVaporPressure(298.15)
	if es < 3100. || es > 3250. {
		t.Errorf("saturation vapor pressure at 298.15 K = %g Pa, want ~3169 Pa", es)
	}
	// Near the triple point the value should be ~611.7 Pa.
	es = SatVaporPressure(tTriple)
	if es < 605. || es > 618. {
		t.Errorf("saturation vapor pressure at the triple point = %g Pa, want ~611.7 Pa", es)
	}
}

func TestSatVaporPressureIce(t *testing.T) {
	esi := SatVaporPressureIce(263.15)
	if esi < 250. || esi > 272. {
		t.Errorf("ice saturation vapor pressure at 263.15 K = %g Pa, want ~260 Pa", esi)
	}
	// Below freezing, saturation over ice is lower than over
	// supercooled water.
	if esi >= SatVaporPressure(263.15) {
		t.Errorf("ice saturation pressure (%g Pa) should be below the water value (%g Pa)",
			esi, SatVaporPressure(263.15))
	}
}

// Saturation specific humidity must increase monotonically with
// temperature at fixed pressure.
func TestSatSpecificHumidityMonotonic(t *testing.T) {
	const p = 101325.
	prev := SatSpecificHumidity(270., p)
	for temp := 271.; temp <= 310.; temp++ {
		q := SatSpecificHumidity(temp, p)
		if q <= prev {
			t.Fatalf("saturation specific humidity not monotonic at %g K: %g <= %g", temp, q, prev)
		}
		prev = q
	}

	q := SatSpecificHumidity(298.15, p)
	if q < 0.018 || q > 0.021 {
		t.Errorf("saturation specific humidity at 298.15 K = %g, want ~0.0197", q)
	}
}

// Zero humidity means the virtual temperature equals the actual
// temperature exactly.
func TestVirtualTemperatureRoundTrip(t *testing.T) {
	for _, temp := range []float64{200., 250., 273.15, 288.15, 300., 320.} {
		if tv := VirtualTemperature(temp, 0.); tv != temp {
			t.Errorf("VirtualTemperature(%g, 0) = %g, want %g", temp, tv, temp)
		}
	}
	tv := VirtualTemperature(300., 0.01)
	if different(tv, 301.824, 1.e-3) {
		t.Errorf("VirtualTemperature(300, 0.01) = %g, want ~301.8", tv)
	}
}

func TestMoistAdiabaticLapseRate(t *testing.T) {
	γ := MoistAdiabaticLapseRate(288.15, 0.01)
	if γ < 0.003 || γ > 0.008 {
		t.Errorf("moist adiabatic lapse rate = %g K/m, want ~0.005 K/m", γ)
	}
	// Masked grid cells (zero or fill-value inputs) must not
	// produce NaN or Inf.
	for _, args := range [][2]float64{{0., 0.}, {-9999., -9999.}, {180., 0.}} {
		γ = MoistAdiabaticLapseRate(args[0], args[1])
		if math.IsNaN(γ) || math.IsInf(γ, 0) {
			t.Errorf("MoistAdiabaticLapseRate(%g, %g) = %g, want finite", args[0], args[1], γ)
		}
	}
}

func TestAirDensity(t *testing.T) {
	ρ := AirDensity(288.15, 0.01, 101325.)
	if ρ < 1.15 || ρ > 1.25 {
		t.Errorf("air density = %g kg/m3, want ~1.22 kg/m3", ρ)
	}
	// The floor suppresses nonphysical values on degenerate input.
	if ρ := AirDensity(1.e6, 0., 101325.); ρ != ρFloor {
		t.Errorf("air density on degenerate input = %g, want floor %g", ρ, ρFloor)
	}
	if ρ := AirDensity(-9999., 0., 101325.); math.IsNaN(ρ) || ρ <= 0. {
		t.Errorf("air density on fill-value temperature = %g, want positive", ρ)
	}
}

func TestSpecificHeatMoistAir(t *testing.T) {
	if cp := SpecificHeatMoistAir(0.); cp != cpDry {
		t.Errorf("dry specific heat = %g, want %g", cp, cpDry)
	}
	if cp := SpecificHeatMoistAir(0.02); cp <= cpDry || cp >= cpVap {
		t.Errorf("moist specific heat = %g, want between %g and %g", cp, cpDry, cpVap)
	}
}

func TestLatentHeatVaporization(t *testing.T) {
	l := LatentHeatVaporization(288.15)
	if l < 2.4e6 || l > 2.52e6 {
		t.Errorf("latent heat of vaporization = %g J/kg, want ~2.47e6 J/kg", l)
	}
	// Latent heat decreases with temperature.
	if LatentHeatVaporization(303.15) >= l {
		t.Error("latent heat of vaporization should decrease with temperature")
	}
}

func TestKinematicViscosityAir(t *testing.T) {
	ν := KinematicViscosityAir(288.15)
	if ν < 1.4e-5 || ν > 1.52e-5 {
		t.Errorf("kinematic viscosity = %g m2/s, want ~1.46e-5 m2/s", ν)
	}
}

func TestBulkRichardsonNumber(t *testing.T) {
	// Zero air-sea difference means zero Richardson number.
	if ri := BulkRichardsonNumber(10., 290., 290., 0.012, 0.012, 5.); ri != 0. {
		t.Errorf("Richardson number with zero air-sea difference = %g, want 0", ri)
	}
	// Warm sea under cooler air is unstable (negative Ri).
	ri := BulkRichardsonNumber(10., 298.15, 297.15, 0.018, 0.016, 8.)
	if ri >= 0. {
		t.Errorf("Richardson number over a warm sea = %g, want negative", ri)
	}
	if math.Abs(ri) > 0.1 {
		t.Errorf("Richardson number = %g, outside the plausible weakly-unstable range", ri)
	}
	// Cool sea under warmer air is stable.
	if ri := BulkRichardsonNumber(10., 288.15, 290.15, 0.011, 0.009, 8.); ri <= 0. {
		t.Errorf("Richardson number over a cool sea = %g, want positive", ri)
	}
	// U = 0 is a documented caller contract violation: the result
	// diverges rather than being silently repaired.
	if ri := BulkRichardsonNumber(10., 298.15, 297.15, 0.018, 0.016, 0.); !math.IsInf(ri, 0) {
		t.Errorf("Richardson number at zero wind = %g, want infinite", ri)
	}
}
