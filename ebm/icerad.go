package ebm

import "math"

// two-band shortwave attenuation and conduction constants for snow-covered
// lake ice
const (
	a1 = .7 // fraction of shortwave in the visible band
	a2 = .3

	lamisw = 1.5 // attenuation of visible shortwave in ice [1/m]
	lamilw = 20. // attenuation of near-infrared shortwave in ice [1/m]
	lamssw = 6.  // attenuation of visible shortwave in snow [1/m]
	lamslw = 20. // attenuation of near-infrared shortwave in snow [1/m]

	condi = 2.24 // thermal conductivity of ice [W/m·K]
	conds = .31  // thermal conductivity of snow [W/m·K]
)

// IceRad returns the effective thermal resistance of the composite snow/ice
// slab, the shortwave conducted within it, and the shortwave absorbed below
// the surface (carried as the slab's change in cold content).
// sw is net shortwave [W/m²], hice lake-ice thickness [m] and hsnow the snow
// depth expressed at snow density [m].
func IceRad(sw, hice, hsnow float64) (avgCond, swCond, deltaCC float64) {
	a := -(1. - math.Exp(-lamssw*hsnow)) / (conds * lamssw)
	b := -math.Exp(-lamssw*hsnow) * (1. - math.Exp(-lamisw*hice)) / (condi * lamisw)
	c := -(1. - math.Exp(-lamslw*hsnow)) / (conds * lamslw)
	d := -math.Exp(-lamslw*hsnow) * (1. - math.Exp(-lamilw*hice)) / (condi * lamilw)

	avgCond = (hsnow*condi + hice*conds) / (condi * conds)
	swCond = sw*a1*(a+b) + sw*a2*(c+d)
	deltaCC = a1*sw*(1.-math.Exp(-(lamssw*hsnow+lamisw*hice))) +
		a2*sw*(1.-math.Exp(-(lamslw*hsnow+lamilw*hice)))
	return
}
