package lakeice

// SnowState is the persistent state of the snow layer sitting on the lake
// ice. Owned by the caller and mutated in place once per timestep.
//
// Vapor-flux sign convention: negative is mass lost to the atmosphere while
// the solver runs; IceMelt inverts the sign to a positive-loss value on exit.
type SnowState struct {
	Swq         float64 // snow water equivalent [m] = snow-ice mass + surface liquid water
	SurfWater   float64 // liquid water held in the surface layer [m]
	SurfTemp    float64 // surface temperature [°C], capped at the freezing point
	VaporFlux   float64 // net sublimation/deposition [m/timestep]
	BlowingFlux float64 // blowing-snow portion of the vapor flux [m/timestep]
	SurfaceFlux float64 // in-place surface portion of the vapor flux [m/timestep]
	MeltEnergy  float64 // energy used melting/freezing this step [W/m²]
	MassError   float64 // step mass-balance residual [m]
}

// LakeState is the persistent state of the underlying water body.
type LakeState struct {
	HIce     float64 // effective lake-ice thickness [m]
	FracIce  float64 // fractional ice cover [-]
	Volume   float64 // lake volume [m³]
	SurfArea float64 // lake surface area [m²]
}
