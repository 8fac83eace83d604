package lakeice

// Options collects the solver's tunable switches. Build one at startup
// (NewDefaultOptions) and pass it by reference; the solver holds no
// process-wide mutable configuration.
type Options struct {
	SnowDT        float64 // search bracket offset below the previous surface temperature [°C]
	MaxLiquidFrac float64 // surface-layer liquid water capacity, fraction of snow-ice mass
	Debug         bool    // fail fast on conservation bookkeeping defects
}

// NewDefaultOptions returns the reference parameterization.
func NewDefaultOptions() *Options {
	return &Options{
		SnowDT:        5.,
		MaxLiquidFrac: liqWatCap,
		Debug:         true,
	}
}
