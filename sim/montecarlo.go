package sim

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/maseology/lakeice"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

const nDim = 8 // sampled melt-season dimensions

// GenerateSamples draws n Latin-hypercube samples of melt-season forcing and
// state, runs one solver step per sample, and writes each sample's
// mass-balance residual to fp (csv; skipped when fp is empty). Sampling is
// confined to warm, wet-pack conditions so the surface solves at the melting
// point. Returns the largest absolute residual of the batch.
func GenerateSamples(opt *lakeice.Options, n int, seed int64, fp string) (maxres float64) {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	sp := smpln.NewLHC(rng, n, nDim, false)

	slv := lakeice.New(opt)
	lns := make([]string, 0, n+1)
	lns = append(lns, "sample,airtemp,wind,netshort,swq,surfwater,hice,rain,vp,residual,melt")

	for k := 0; k < n; k++ {
		u := func(j int) float64 { return sp.U[j][k] }
		ta := mmaths.LinearTransform(2., 12., u(0))
		wind := mmaths.LinearTransform(1., 8., u(1))
		sw := mmaths.LinearTransform(50., 350., u(2))
		swq := mmaths.LinearTransform(.3, .8, u(3))
		sfrac := mmaths.LinearTransform(.1, .3, u(4))
		hice := mmaths.LinearTransform(0., 1.2, u(5))
		rain := mmaths.LinearTransform(0., 8., u(6))
		rh := mmaths.LinearTransform(.5, .95, u(7))

		vp := rh * esat(ta)
		tak := ta + 273.15
		frc := lakeice.Forcing{
			Z2:        2.,
			Z0:        .001,
			Ra:        math.Pow(math.Log(2./.001), 2.) / (.16 * wind),
			Wind:      wind,
			NetShort:  sw,
			LongIn:    emissA * stefan * tak * tak * tak * tak,
			AirDens:   press / (287. * tak),
			Le:        2.501e6 - 2361.*ta,
			AirTemp:   ta,
			Press:     press,
			Vpd:       esat(ta) - vp,
			Vp:        vp,
			SurfAtten: .6,
			DeltaT:    float64(intvl) / 3600.,
			FracPrv:   1.,
		}
		snow := lakeice.SnowState{Swq: swq, SurfWater: sfrac * swq}
		lake := lakeice.LakeState{HIce: hice, FracIce: 1., Volume: 1e6, SurfArea: 1e4}

		fx, err := slv.IceMelt(&frc, lakeice.Precip{Rainfall: rain}, &snow, &lake)
		if err != nil {
			// melt-season sampling keeps the balance solvable at 0°C; a failure
			// here is a sampling-range defect, not a model state to continue from
			panic(err)
		}
		if r := math.Abs(snow.MassError); r > maxres {
			maxres = r
		}
		lns = append(lns, fmt.Sprintf("%d,%f,%f,%f,%f,%f,%f,%f,%f,%e,%f",
			k, ta, wind, sw, swq, sfrac*swq, hice, rain, vp, snow.MassError, fx.Melt))
	}

	if len(fp) > 0 {
		mmio.WriteLines(fp, lns)
	}
	return
}

// SampleBatch names an output batch by its release time, after the sampler
// output convention.
func SampleBatch(outdir string) string {
	return outdir + time.Now().Format("060102150405")
}
