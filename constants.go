package lakeice

const (
	nearzero = 1e-9

	rhoWater = 1000. // density of water [kg/m³]
	rhoIce   = 917.  // density of lake ice [kg/m³]
	rhoSnow  = 250.  // density of fresh snow over lake ice [kg/m³]

	lf         = 3.337e5 // latent heat of fusion [J/kg]
	secperhour = 3600.

	liqWatCap = .035   // liquid water holding capacity, as a fraction of snow-ice mass
	tSentinel = -9998. // surface temperatures at/below this signal a failed search [°C]
)
