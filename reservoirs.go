package lakeice

// Reservoir accounting for the three transient stores of one step: snow-ice
// mass, surface liquid water and lake ice (all in m water equivalent). The
// vapor loss is drawn from snow-ice + surface water first, then lake ice;
// any shortfall overflows into the lake volume, scaled by the cell's
// fractional cover and the lake surface area.

// redistributeVapor applies the step's vapor flux after a melting-point
// solution, where surface liquid water still exists as its own store.
// Negative flux is mass lost to the atmosphere.
func redistributeVapor(snow *SnowState, lake *LakeState, fracprv, snowIce, lakeIce float64) (float64, float64) {
	if snowIce+snow.SurfWater+lakeIce < -snow.VaporFlux {
		// the loss exceeds everything stored: clamp the flux to the combined
		// mass and rescale its components to match
		tot := snowIce + snow.SurfWater + lakeIce
		snow.BlowingFlux *= -tot / snow.VaporFlux
		snow.VaporFlux = -tot
		snow.SurfaceFlux = -tot - snow.BlowingFlux
		lake.Volume -= lakeIce * fracprv * lake.SurfArea
		return 0., 0.
	}
	if snowIce+snow.SurfWater < -snow.VaporFlux {
		// the shortfall transfers from lake ice into the snow reservoir, net zero
		lakeIce += snow.VaporFlux + snowIce
		lake.Volume += lake.SurfArea * fracprv * (snow.VaporFlux + snowIce)
		return 0., lakeIce
	}
	if -snow.VaporFlux > snow.SurfWater {
		snowIce += snow.VaporFlux + snow.SurfWater
		snow.SurfWater = 0.
		return snowIce, lakeIce
	}
	snow.SurfWater += snow.VaporFlux
	return snowIce, lakeIce
}

// redistributeVaporFrozen is the sub-freezing variant: the surface water was
// frozen into the snow ice before vapor accounting, so the clamp runs between
// snow ice and lake ice only.
func redistributeVaporFrozen(snow *SnowState, lake *LakeState, fracprv, snowIce, lakeIce float64) (float64, float64) {
	if snowIce+lakeIce < -snow.VaporFlux {
		tot := snowIce + lakeIce
		snow.BlowingFlux *= -tot / snow.VaporFlux
		snow.VaporFlux = -tot
		snow.SurfaceFlux = -tot - snow.BlowingFlux
		lake.Volume -= lake.SurfArea * fracprv * lakeIce
		return 0., 0.
	}
	if snowIce < -snow.VaporFlux {
		lakeIce += snow.VaporFlux + snowIce
		lake.Volume += lake.SurfArea * fracprv * (snow.VaporFlux + snowIce)
		return 0., lakeIce
	}
	if snowIce > 0. {
		return snowIce + snow.VaporFlux, lakeIce
	}
	lake.Volume += lake.SurfArea * fracprv * snow.VaporFlux
	return snowIce, lakeIce
}

// partitionMelt consumes the step's melt from snow ice first, then lake ice.
// Melted snow ice joins the surface liquid water; melted lake ice returns to
// lake water and is reported separately as iceMelt.
func partitionMelt(snow *SnowState, snowIce, lakeIce, snowMelt float64) (float64, float64, float64) {
	switch {
	case snowMelt < snowIce: // incomplete melting of the pack
		snow.SurfWater += snowMelt
		return snowIce - snowMelt, lakeIce, 0.
	case snowMelt < snowIce+lakeIce: // pack gone, ice remains
		snow.SurfWater += snowIce
		iceMelt := snowMelt - snowIce
		return 0., lakeIce - iceMelt, iceMelt
	default: // complete melting of pack and ice; melt capped to the combined mass
		snow.SurfWater += snowIce
		return 0., 0., lakeIce
	}
}

// reconcile folds the transient reservoirs back into the persistent state.
// Calling it again with the same reservoirs leaves the state unchanged.
func reconcile(snow *SnowState, lake *LakeState, snowIce, lakeIce float64) {
	snow.Swq = snowIce + snow.SurfWater
	lake.HIce = lakeIce * rhoWater / rhoIce
	if lake.HIce <= 0. {
		lake.HIce = 0.
		lake.FracIce = 0.
	}
}
