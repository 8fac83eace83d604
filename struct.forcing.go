package lakeice

// Forcing is the read-only atmospheric forcing for one timestep.
type Forcing struct {
	Z2           float64 // reference height [m]
	Displacement float64 // displacement height [m]
	Z0           float64 // roughness length [m]
	Ra           float64 // aerodynamic resistance, uncorrected for stability [s/m]
	Wind         float64 // wind speed [m/s]
	NetShort     float64 // net shortwave radiation [W/m²]
	LongIn       float64 // incoming longwave radiation [W/m²]
	AirDens      float64 // density of air [kg/m³]
	Le           float64 // latent heat of vaporization [J/kg]
	AirTemp      float64 // air temperature [°C]
	Press        float64 // air pressure [Pa]
	Vpd          float64 // vapour pressure deficit [Pa]
	Vp           float64 // actual vapour pressure [Pa]
	Tcutoff      float64 // freezing point of the lake water [°C]
	SurfAtten    float64 // surface attenuation of penetrating shortwave [-]
	DeltaT       float64 // timestep length [h]
	FracPrv      float64 // fractional ice/snow cover of the cell [-]
}

// Precip is the step's precipitation, supplied in mm.
type Precip struct {
	Rainfall float64 // [mm]
	Snowfall float64 // [mm]
}
