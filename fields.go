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

	"github.com/ctessum/sparse"
)

// FieldInput holds the input fields for the batched solver. All
// arrays must share an identical shape; each element is an
// independent observation point.
type FieldInput struct {
	// Zt and Zu are the measurement heights [m], shared by all
	// points.
	Zt, Zu float64

	// SST is sea-surface temperature [K].
	SST *sparse.DenseArray
	// SSQ is sea-surface saturation specific humidity [kg/kg].
	SSQ *sparse.DenseArray
	// Theta is air potential temperature at zt [K].
	Theta *sparse.DenseArray
	// Q is air specific humidity at zt [kg/kg].
	Q *sparse.DenseArray
	// Wind is scalar wind speed at zu [m/s].
	Wind *sparse.DenseArray
}

// FieldOutput holds the elementwise solver results, with the same
// shape as the input fields.
type FieldOutput struct {
	Cd, Ch, Ce *sparse.DenseArray

	ThetaZu, QZu, UBlk *sparse.DenseArray

	UStar, TStar, QStar *sparse.DenseArray

	Z0, InvObukhov, UN10 *sparse.DenseArray

	// SST and SSQ are the surface state after any skin correction.
	SST, SSQ *sparse.DenseArray

	// Skin holds the updated per-point warm-layer states, indexed
	// like the flattened input arrays. Nil when no skin correction
	// was configured.
	Skin []SkinState
}

// SkinFieldCorrection configures the cool-skin / warm-layer hook for
// the batched solver. The radiative fields must share the shape of
// the solver input fields, and States must either be empty (first
// time step) or hold one element per observation point.
type SkinFieldCorrection struct {
	// Correct performs the per-point correction.
	Correct SkinCorrector

	// SolarNet is the net downwelling solar radiation [W/m2].
	SolarNet *sparse.DenseArray
	// LongwaveDown is the downwelling longwave radiation [W/m2].
	LongwaveDown *sparse.DenseArray
	// SLP is the sea-level pressure [Pa], shared by all points.
	SLP float64

	// States is the per-point warm-layer state from the previous
	// time step, indexed like the flattened input arrays.
	States []SkinState
}

// SolveFields applies the similarity solver elementwise over the
// input fields. The physics is identical to Solve; this is purely a
// batched driver. Points are independent, so rows of the leading
// array dimension are processed concurrently. The returned error is
// non-nil only for caller contract violations: mismatched array
// shapes, nIter ≤ 0, non-positive heights, or an incompletely
// configured skin correction.
func SolveFields(s Scheme, in FieldInput, nIter int, skin *SkinFieldCorrection) (*FieldOutput, error) {
	if err := in.valid(); err != nil {
		return nil, err
	}
	if nIter <= 0 {
		return nil, fmt.Errorf("aerobulk: iteration count must be positive, got %d", nIter)
	}
	n := len(in.SST.Elements)
	var states []SkinState
	if skin != nil {
		if err := skin.valid(in.SST, n); err != nil {
			return nil, err
		}
		states = make([]SkinState, n)
		copy(states, skin.States)
	}

	shape := in.SST.Shape
	o := &FieldOutput{
		Cd:         sparse.ZerosDense(shape...),
		Ch:         sparse.ZerosDense(shape...),
		Ce:         sparse.ZerosDense(shape...),
		ThetaZu:    sparse.ZerosDense(shape...),
		QZu:        sparse.ZerosDense(shape...),
		UBlk:       sparse.ZerosDense(shape...),
		UStar:      sparse.ZerosDense(shape...),
		TStar:      sparse.ZerosDense(shape...),
		QStar:      sparse.ZerosDense(shape...),
		Z0:         sparse.ZerosDense(shape...),
		InvObukhov: sparse.ZerosDense(shape...),
		UN10:       sparse.ZerosDense(shape...),
		SST:        sparse.ZerosDense(shape...),
		SSQ:        sparse.ZerosDense(shape...),
		Skin:       states,
	}

	nrows := shape[0]
	stride := n / nrows
	errs := make([]error, nrows)
	type empty struct{}
	sem := make(chan empty, nrows) // semaphore pattern
	for j := 0; j < nrows; j++ {
		go func(j int) { // concurrent processing
			for i := j * stride; i < (j+1)*stride; i++ {
				pt := Input{
					Zt: in.Zt,
					Zu: in.Zu,
					Surface: SurfaceState{
						SST: in.SST.Elements[i],
						SSQ: in.SSQ.Elements[i],
					},
					Air: AirState{
						Theta: in.Theta.Elements[i],
						Q:     in.Q.Elements[i],
						Wind:  in.Wind.Elements[i],
					},
				}
				var corr *SkinCorrection
				if skin != nil {
					corr = &SkinCorrection{
						Correct:      skin.Correct,
						SolarNet:     skin.SolarNet.Elements[i],
						LongwaveDown: skin.LongwaveDown.Elements[i],
						SLP:          skin.SLP,
						State:        states[i],
					}
				}
				r, err := Solve(s, pt, nIter, corr)
				if err != nil {
					errs[j] = err
					return
				}
				o.Cd.Elements[i] = r.Cd
				o.Ch.Elements[i] = r.Ch
				o.Ce.Elements[i] = r.Ce
				o.ThetaZu.Elements[i] = r.ThetaZu
				o.QZu.Elements[i] = r.QZu
				o.UBlk.Elements[i] = r.UBlk
				o.UStar.Elements[i] = r.UStar
				o.TStar.Elements[i] = r.TStar
				o.QStar.Elements[i] = r.QStar
				o.Z0.Elements[i] = r.Z0
				o.InvObukhov.Elements[i] = r.InvObukhov
				o.UN10.Elements[i] = r.UN10
				o.SST.Elements[i] = r.Surface.SST
				o.SSQ.Elements[i] = r.Surface.SSQ
				if states != nil {
					states[i] = r.Skin
				}
			}
			sem <- empty{}
		}(j)
	}
	for j := 0; j < nrows; j++ { // wait for routines to finish
		<-sem
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return o, nil
}

// FluxFields evaluates the bulk fluxes elementwise from a batched
// solver result, when given the sea-level pressure slp [Pa] and the
// surface type. The returned arrays are the wind stress [N/m2] and
// the sensible and latent heat fluxes [W/m2, positive upward].
func FluxFields(in FieldInput, out *FieldOutput, slp float64, sfc SurfaceType) (tau, sensible, latent *sparse.DenseArray) {
	tau = sparse.ZerosDense(in.SST.Shape...)
	sensible = sparse.ZerosDense(in.SST.Shape...)
	latent = sparse.ZerosDense(in.SST.Shape...)
	for i := range in.SST.Elements {
		f := Fluxes(
			Input{Air: AirState{Wind: in.Wind.Elements[i]}},
			Output{
				Cd:      out.Cd.Elements[i],
				Ch:      out.Ch.Elements[i],
				Ce:      out.Ce.Elements[i],
				ThetaZu: out.ThetaZu.Elements[i],
				QZu:     out.QZu.Elements[i],
				UBlk:    out.UBlk.Elements[i],
				Surface: SurfaceState{
					SST: out.SST.Elements[i],
					SSQ: out.SSQ.Elements[i],
				},
			},
			slp, sfc)
		tau.Elements[i] = f.Tau
		sensible.Elements[i] = f.SensibleHeat
		latent.Elements[i] = f.LatentHeat
	}
	return tau, sensible, latent
}

// valid checks that all input fields are present and share the same
// shape.
func (in *FieldInput) valid() error {
	fields := []struct {
		name string
		a    *sparse.DenseArray
	}{
		{"SST", in.SST},
		{"SSQ", in.SSQ},
		{"Theta", in.Theta},
		{"Q", in.Q},
		{"Wind", in.Wind},
	}
	for _, f := range fields {
		if f.a == nil {
			return fmt.Errorf("aerobulk: input field %s is nil", f.name)
		}
		if !shapesEqual(in.SST.Shape, f.a.Shape) {
			return fmt.Errorf("aerobulk: input field %s has shape %v which differs from %v",
				f.name, f.a.Shape, in.SST.Shape)
		}
	}
	if len(in.SST.Shape) == 0 || len(in.SST.Elements) == 0 {
		return fmt.Errorf("aerobulk: input fields are empty")
	}
	return nil
}

// valid checks the skin correction fields against the solver input
// shape and point count.
func (s *SkinFieldCorrection) valid(ref *sparse.DenseArray, n int) error {
	if s.Correct == nil {
		return fmt.Errorf("aerobulk: skin correction requested without a corrector function")
	}
	if s.SolarNet == nil || s.LongwaveDown == nil {
		return fmt.Errorf("aerobulk: skin correction requires solar and longwave radiation fields")
	}
	if !shapesEqual(ref.Shape, s.SolarNet.Shape) || !shapesEqual(ref.Shape, s.LongwaveDown.Shape) {
		return fmt.Errorf("aerobulk: skin correction radiation fields have shapes %v and %v which differ from %v",
			s.SolarNet.Shape, s.LongwaveDown.Shape, ref.Shape)
	}
	if !(s.SLP > 0.) {
		return fmt.Errorf("aerobulk: skin correction requires a positive sea-level pressure, got %g Pa", s.SLP)
	}
	if len(s.States) != 0 && len(s.States) != n {
		return fmt.Errorf("aerobulk: skin correction has %d states for %d points", len(s.States), n)
	}
	return nil
}

func shapesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if b[i] != v {
			return false
		}
	}
	return true
}
