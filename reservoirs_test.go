package lakeice

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/maseology/lakeice/ebm"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// Randomized conservation check: both solution branches, random reservoirs,
// precipitation and vapor exchange; the residual must close and the state
// invariants must hold after every step.
func Test_massbal01(tst *testing.T) {

	chk.PrintTitle("massbal01. randomized mass closure")

	rng := rand.New(mrg63k3a.New())
	rng.Seed(7)

	opt := NewDefaultOptions()
	for k := 0; k < 500; k++ {
		swq := .1 + rng.Float64()*.8
		surfw := rng.Float64() * .3 * swq
		hice := rng.Float64()
		vf := -rng.Float64() * .05 // loss never exceeding the snow reservoir

		s := New(opt)
		if rng.Intn(2) == 0 { // melting-point solution
			re := (rng.Float64() - .5) * 200.
			s.eval = fixed(ebm.Result{Qnet: 0., RefreezeEnergy: re, VaporFlux: vf, SurfaceFlux: vf}, ebm.Result{})
		} else { // sub-freezing solution
			ts := -(.5 + rng.Float64()*4.)
			s.eval = fixed(
				ebm.Result{Qnet: -30. - rng.Float64()*50., VaporFlux: vf, SurfaceFlux: vf},
				ebm.Result{Qnet: 0., RefreezeEnergy: -5., VaporFlux: vf, SurfaceFlux: vf})
			s.root = func(f func(x float64) (float64, error), xa, xb float64) (float64, error) {
				return ts, nil
			}
		}

		snow := SnowState{Swq: swq, SurfWater: surfw, SurfTemp: -rng.Float64()}
		lake := LakeState{HIce: hice, FracIce: 1., Volume: 1e6, SurfArea: 1e4}
		frc := testForcing()
		frc.DeltaT = 6.
		pcp := Precip{Rainfall: rng.Float64() * 10., Snowfall: rng.Float64() * 10.}

		fx, err := s.IceMelt(frc, pcp, &snow, &lake)
		if err != nil {
			tst.Errorf("IceMelt failed: %v\n", err)
			return
		}

		if snow.MassError > 1e-9 || snow.MassError < -1e-9 {
			tst.Errorf("sample %d: mass balance residual %e m\n", k, snow.MassError)
			return
		}
		if snow.SurfWater < 0. || snow.Swq < 0. || lake.HIce < 0. || fx.Melt < 0. {
			tst.Errorf("sample %d: negative store (surfwater %e, swq %e, hice %e, melt %e)\n",
				k, snow.SurfWater, snow.Swq, lake.HIce, fx.Melt)
			return
		}
		if lake.HIce == 0. && lake.FracIce != 0. {
			tst.Errorf("sample %d: ice cover %f with no ice\n", k, lake.FracIce)
			return
		}
		if capw := opt.MaxLiquidFrac * (snow.Swq - snow.SurfWater); snow.SurfWater > capw+1e-12 {
			tst.Errorf("sample %d: surface water %e above capacity %e\n", k, snow.SurfWater, capw)
			return
		}
	}
}

func Test_partition01(tst *testing.T) {

	chk.PrintTitle("partition01. melt consumption order")

	// melt from snow ice only
	snow := SnowState{}
	si, li, im := partitionMelt(&snow, .05, .02, .01)
	chk.Scalar(tst, "snow ice", 1e-15, si, .04)
	chk.Scalar(tst, "lake ice", 1e-15, li, .02)
	chk.Scalar(tst, "ice melt", 1e-15, im, 0.)
	chk.Scalar(tst, "surf water", 1e-15, snow.SurfWater, .01)

	// pack exhausted, remainder from lake ice
	snow = SnowState{}
	si, li, im = partitionMelt(&snow, .05, .02, .06)
	chk.Scalar(tst, "snow ice", 1e-15, si, 0.)
	chk.Scalar(tst, "lake ice", 1e-15, li, .01)
	chk.Scalar(tst, "ice melt", 1e-15, im, .01)
	chk.Scalar(tst, "surf water", 1e-15, snow.SurfWater, .05)

	// everything melts, melt capped to the combined mass
	snow = SnowState{}
	si, li, im = partitionMelt(&snow, .05, .02, .1)
	chk.Scalar(tst, "snow ice", 1e-15, si, 0.)
	chk.Scalar(tst, "lake ice", 1e-15, li, 0.)
	chk.Scalar(tst, "ice melt", 1e-15, im, .02)
	chk.Scalar(tst, "surf water", 1e-15, snow.SurfWater, .05)
}

func Test_redistribute01(tst *testing.T) {

	chk.PrintTitle("redistribute01. loss drawn from surface water first")

	snow := SnowState{SurfWater: .01, VaporFlux: -.004, SurfaceFlux: -.004}
	lake := LakeState{Volume: 1e3, SurfArea: 1e3}
	si, li := redistributeVapor(&snow, &lake, 1., .05, .02)
	chk.Scalar(tst, "snow ice", 1e-15, si, .05)
	chk.Scalar(tst, "lake ice", 1e-15, li, .02)
	chk.Scalar(tst, "surf water", 1e-15, snow.SurfWater, .006)
	chk.Scalar(tst, "volume", 1e-15, lake.Volume, 1e3)

	// loss exceeds surface water, remainder from snow ice
	snow = SnowState{SurfWater: .01, VaporFlux: -.03, SurfaceFlux: -.03}
	lake = LakeState{Volume: 1e3, SurfArea: 1e3}
	si, li = redistributeVapor(&snow, &lake, 1., .05, .02)
	chk.Scalar(tst, "snow ice", 1e-15, si, .03)
	chk.Scalar(tst, "lake ice", 1e-15, li, .02)
	chk.Scalar(tst, "surf water", 1e-15, snow.SurfWater, 0.)
}

func Test_redistribute02(tst *testing.T) {

	chk.PrintTitle("redistribute02. frozen variant, deposition onto bare lake")

	// deposition with no snow ice accrues to the lake volume
	snow := SnowState{VaporFlux: .002, SurfaceFlux: .002}
	lake := LakeState{Volume: 1e3, SurfArea: 1e3}
	si, li := redistributeVaporFrozen(&snow, &lake, 1., 0., .02)
	chk.Scalar(tst, "snow ice", 1e-15, si, 0.)
	chk.Scalar(tst, "lake ice", 1e-15, li, .02)
	chk.Scalar(tst, "volume", 1e-12, lake.Volume, 1e3+2.)

	// loss rescales the flux components when everything sublimates
	snow = SnowState{VaporFlux: -.05, BlowingFlux: -.01, SurfaceFlux: -.04}
	lake = LakeState{Volume: 1e3, SurfArea: 1e3}
	si, li = redistributeVaporFrozen(&snow, &lake, 1., .01, .02)
	chk.Scalar(tst, "snow ice", 1e-15, si, 0.)
	chk.Scalar(tst, "lake ice", 1e-15, li, 0.)
	chk.Scalar(tst, "vapor flux", 1e-15, snow.VaporFlux, -.03)
	chk.Scalar(tst, "blowing flux", 1e-15, snow.BlowingFlux, -.006)
	chk.Scalar(tst, "surface flux", 1e-15, snow.SurfaceFlux, -.024)
	chk.Scalar(tst, "volume", 1e-12, lake.Volume, 1e3-20.)
}

// ensure the testing rng is deterministic across runs
func Test_rng01(tst *testing.T) {
	r1, r2 := rand.New(mrg63k3a.New()), rand.New(mrg63k3a.New())
	r1.Seed(7)
	r2.Seed(7)
	chk.Scalar(tst, "deterministic stream", 0, r1.Float64(), r2.Float64())
}
