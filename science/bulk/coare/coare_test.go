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

package coare

import (
	"math"
	"testing"
)

// The COARE stable-branch expression carries a small constant offset
// at neutral (a known property of the Fairall et al. fit), so the
// neutral check is tolerance-based rather than exact.
func TestPsiNeutral(t *testing.T) {
	s := New()
	if ψ := s.PsiM(0.); math.Abs(ψ) > 5.e-3 {
		t.Errorf("PsiM(0) = %g, want ~0", ψ)
	}
	if ψ := s.PsiH(0.); math.Abs(ψ) > 5.e-3 {
		t.Errorf("PsiH(0) = %g, want ~0", ψ)
	}
}

func TestPsiBranches(t *testing.T) {
	s := New()
	if ψ := s.PsiM(-1.); ψ <= 0. {
		t.Errorf("PsiM(-1) = %g, want positive", ψ)
	}
	if ψ := s.PsiM(2.); ψ >= 0. {
		t.Errorf("PsiM(2) = %g, want negative", ψ)
	}
	if ψ := s.PsiH(-1.); ψ <= 0. {
		t.Errorf("PsiH(-1) = %g, want positive", ψ)
	}
	if ψ := s.PsiH(2.); ψ >= 0. {
		t.Errorf("PsiH(2) = %g, want negative", ψ)
	}
	// The convective form takes over smoothly for strong
	// instability and stays finite.
	if ψ := s.PsiM(-50.); math.IsNaN(ψ) || math.IsInf(ψ, 0) || ψ <= 0. {
		t.Errorf("PsiM(-50) = %g, want positive and finite", ψ)
	}
	// The exponential guard keeps extreme stability finite.
	if ψ := s.PsiM(200.); math.IsNaN(ψ) || math.IsInf(ψ, 0) {
		t.Errorf("PsiM(200) = %g, want finite", ψ)
	}
}

func TestCharnockParam(t *testing.T) {
	if c := charnockParam(5.); c != 0.011 {
		t.Errorf("charnock at 5 m/s = %g, want 0.011", c)
	}
	if c := charnockParam(20.); c != 0.018 {
		t.Errorf("charnock at 20 m/s = %g, want 0.018", c)
	}
	if c := charnockParam(14.); c <= 0.011 || c >= 0.018 {
		t.Errorf("charnock at 14 m/s = %g, want between the ramp endpoints", c)
	}
}

func TestRoughness(t *testing.T) {
	s := New()
	const ν = 1.5e-5
	z0, z0t, z0q := s.Roughness(0.3, 8., -0.1, ν)
	if z0t != z0q {
		t.Errorf("COARE scalar roughness lengths differ: z0t = %g, z0q = %g", z0t, z0q)
	}
	if z0 < 5.e-5 || z0 > 2.e-4 {
		t.Errorf("z0 = %g m, want ~1e-4 m", z0)
	}
	if z0t <= 0. || z0t > 1.1e-4 {
		t.Errorf("z0t = %g m, want within (0, 1.1e-4] m", z0t)
	}

	// The wind-speed-dependent Charnock coefficient makes high-wind
	// seas rougher at the same friction velocity.
	z0High, _, _ := s.Roughness(0.6, 20., -0.1, ν)
	z0Mid, _, _ := s.Roughness(0.6, 8., -0.1, ν)
	if z0High <= z0Mid {
		t.Errorf("z0 at 20 m/s = %g, want above z0 at 8 m/s = %g", z0High, z0Mid)
	}
}

func TestGustParams(t *testing.T) {
	β, zi := New().GustParams()
	if β != 1.2 || zi != 600. {
		t.Errorf("GustParams() = (%g, %g), want (1.2, 600)", β, zi)
	}
}
