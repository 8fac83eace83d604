package sim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/maseology/lakeice"
)

func Test_synthetic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("synthetic01")

	fs := Synthetic(44.5, 2023)
	if len(fs.T) != 365*4 || len(fs.Atm) != 365*4 || len(fs.Pcp) != 365*4 {
		tst.Errorf("expected %d 6-hourly timesteps, got %d\n", 365*4, len(fs.T))
		return
	}

	jan, jul := fs.Atm[4*15+2], fs.Atm[4*196+2] // mid-afternoon, mid-month
	if jul.AirTemp <= jan.AirTemp {
		tst.Errorf("july (%f) should be warmer than january (%f)\n", jul.AirTemp, jan.AirTemp)
	}
	for j, a := range fs.Atm {
		if a.NetShort < 0. || a.Ra <= 0. || a.AirDens <= 0. || a.Vp < 0. {
			tst.Errorf("timestep %d: non-physical forcing %+v\n", j, a)
			return
		}
	}
}

func Test_domain01(tst *testing.T) {

	chk.PrintTitle("domain01. melt season over a small lake field")

	fs := Synthetic(44.5, 2023)
	jul := fs.Slice(181*4, 181*4+28) // a warm week, 6-hourly

	dom := NewDomain(lakeice.NewDefaultOptions(), 4, .2, .3, 1e6, 1e4)
	res, err := dom.Evaluate(jul)
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}

	if res.MaxMbe > 1e-9 {
		tst.Errorf("mass balance residual %e m\n", res.MaxMbe)
	}
	sm := 0.
	for _, m := range res.Melt {
		if m < 0. {
			tst.Errorf("negative melt %f\n", m)
			return
		}
		sm += m
	}
	if sm <= 0. {
		tst.Errorf("a july week should melt the pack, total %f mm\n", sm)
	}
	for i, c := range dom.Cells {
		if c.Snow.SurfWater < 0. || c.Snow.Swq < 0. || c.Lake.HIce < 0. {
			tst.Errorf("cell %d: negative store after run: %+v %+v\n", i, c.Snow, c.Lake)
			return
		}
		if c.Lake.HIce == 0. && c.Lake.FracIce != 0. {
			tst.Errorf("cell %d: ice cover with no ice\n", i)
			return
		}
	}
}

func Test_domain02(tst *testing.T) {

	chk.PrintTitle("domain02. identical cells stay identical")

	fs := Synthetic(44.5, 2023)
	jul := fs.Slice(182*4, 182*4+12)

	dom := NewDomain(lakeice.NewDefaultOptions(), 3, .15, .25, 1e6, 1e4)
	if _, err := dom.Evaluate(jul); err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	c0 := dom.Cells[0]
	for _, c := range dom.Cells[1:] {
		chk.Scalar(tst, "swq", 1e-15, c.Snow.Swq, c0.Snow.Swq)
		chk.Scalar(tst, "hice", 1e-15, c.Lake.HIce, c0.Lake.HIce)
		chk.Scalar(tst, "volume", 1e-9, c.Lake.Volume, c0.Lake.Volume)
	}
}

func Test_mc01(tst *testing.T) {

	chk.PrintTitle("mc01. sampled melt-season mass closure")

	maxres := GenerateSamples(lakeice.NewDefaultOptions(), 100, 1234, "")
	if maxres > 1e-9 {
		tst.Errorf("max mass-balance residual %e m\n", maxres)
	}
}
