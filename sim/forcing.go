package sim

import (
	"math"
	"time"

	"github.com/maseology/goHydro/solirrad"
	"github.com/maseology/lakeice"
)

const (
	intvl  = 86400 / 4 // 6-hourly timestep [s]
	stefan = 5.6696e-8

	meanSW  = 340. // annual mean clear-sky shortwave at the top of the daily cycle [W/m²]
	avgTa   = 6.   // annual mean air temperature [°C]
	ampTa   = 14.  // annual air temperature amplitude [°C]
	offset  = -10  // days winter solstice precedes the new year
	emissA  = .85  // effective atmospheric emissivity
	rhum    = .8   // relative humidity
	press   = 101325.
	windavg = 3.5
)

// ForcingSeries is a lake's per-timestep atmospheric forcing and
// precipitation. FracPrv is left zero; the simulation loop stamps each cell's
// current ice cover before solving.
type ForcingSeries struct {
	T   []time.Time
	Atm []lakeice.Forcing
	Pcp []lakeice.Precip
}

// Slice returns the subseries [j0,j1).
func (fs *ForcingSeries) Slice(j0, j1 int) *ForcingSeries {
	return &ForcingSeries{T: fs.T[j0:j1], Atm: fs.Atm[j0:j1], Pcp: fs.Pcp[j0:j1]}
}

func esat(t float64) float64 {
	if t < 0. {
		return 610.78 * math.Exp(21.875*t/(t+265.5))
	}
	return 610.78 * math.Exp(17.269*t/(t+237.3))
}

// Synthetic builds one year of 6-hourly forcing for a lake at the given
// latitude: solar-geometry-scaled shortwave, sinusoidal air temperature in
// the manner of the sine-curve potential evaporation generators, and a
// simple cold/warm precipitation split.
func Synthetic(latitude float64, yr int) *ForcingSeries {
	si := solirrad.New(latitude, 0., 0.)
	psi := si.PSIfactor

	dtb := time.Date(yr, 1, 1, 0, 0, 0, 0, time.UTC)
	dte := time.Date(yr+1, 1, 1, 0, 0, 0, 0, time.UTC)
	nt := int(dte.Sub(dtb).Seconds()) / intvl

	fs := ForcingSeries{
		T:   make([]time.Time, nt),
		Atm: make([]lakeice.Forcing, nt),
		Pcp: make([]lakeice.Precip, nt),
	}
	for j := 0; j < nt; j++ {
		t := dtb.Add(time.Second * time.Duration(j*intvl))
		doy := t.YearDay() - 1
		hr := float64(t.Hour())

		ta := avgTa - ampTa*math.Cos(2.*math.Pi*float64(doy-offset)/365.) + 3.*math.Sin(2.*math.Pi*(hr-9.)/24.)
		diurnal := math.Max(0., math.Sin(2.*math.Pi*(hr-6.)/24.))
		sw := meanSW * psi[doy] * diurnal
		vp := rhum * esat(ta)
		tak := ta + 273.15
		wind := windavg + 1.5*math.Sin(2.*math.Pi*hr/24.)

		fs.T[j] = t
		fs.Atm[j] = lakeice.Forcing{
			Z2:           2.,
			Displacement: 0.,
			Z0:           .001,
			Ra:           math.Pow(math.Log(2./.001), 2.) / (.16 * wind),
			Wind:         wind,
			NetShort:     sw,
			LongIn:       emissA * stefan * tak * tak * tak * tak,
			AirDens:      press / (287. * tak),
			Le:           2.501e6 - 2361.*ta,
			AirTemp:      ta,
			Press:        press,
			Vpd:          esat(ta) - vp,
			Vp:           vp,
			Tcutoff:      0.,
			SurfAtten:    .6,
			DeltaT:       float64(intvl) / 3600.,
		}

		// a storm every fifth day, rain when warm, snow when cold
		if doy%5 == 0 && hr < 6. {
			if ta > 1. {
				fs.Pcp[j].Rainfall = 6.
			} else {
				fs.Pcp[j].Snowfall = 8.
			}
		}
	}
	return &fs
}
