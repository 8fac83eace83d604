package lakeice

// Fluxes reports the step's melt output and energy-flux diagnostics.
// Melt is water expelled from the surface layer to the cell (runoff);
// IceMelt is lake ice returned to lake water and is aggregated separately
// by the caller.
type Fluxes struct {
	Melt           float64 // surface melt/runoff output [mm]
	IceMelt        float64 // lake-ice melt [m water equivalent]
	Qnet           float64 // net surface energy exchange [W/m²]
	LWnet          float64 // net longwave [W/m²]
	Advection      float64 // energy advected by precipitation [W/m²]
	DeltaCC        float64 // change in cold content of the slab [W/m²]
	SnowFlux       float64 // conductive flux through the snow/ice slab [W/m²]
	Latent         float64 // latent heat exchange [W/m²]
	Sensible       float64 // sensible heat exchange [W/m²]
	RefreezeEnergy float64 // surface refreeze (≥0) or melt (<0) energy [W/m²]
}
