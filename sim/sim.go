// Package sim drives the lake ice-melt solver over a field of mutually
// independent lake cells, one shared forcing series, one solve per cell per
// timestep.
package sim

import (
	"fmt"
	"math"
	"sync"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/lakeice"
)

// Cell is one independently solved lake column.
type Cell struct {
	Snow lakeice.SnowState
	Lake lakeice.LakeState
}

// Domain is a set of cells sharing one solver and one forcing series. Cells
// hold no shared state, so each timestep solves them concurrently.
type Domain struct {
	Cells []*Cell
	slv   *lakeice.Solver
}

// NewDomain builds n cells around a common initial state.
func NewDomain(opt *lakeice.Options, n int, swq0, hice0, vol0, area0 float64) *Domain {
	cells := make([]*Cell, n)
	for i := range cells {
		fraci := 0.
		if hice0 > 0. {
			fraci = 1.
		}
		cells[i] = &Cell{
			Snow: lakeice.SnowState{Swq: swq0},
			Lake: lakeice.LakeState{HIce: hice0, FracIce: fraci, Volume: vol0, SurfArea: area0},
		}
	}
	return &Domain{Cells: cells, slv: lakeice.New(opt)}
}

// Results aggregates the domain's per-timestep outputs.
type Results struct {
	Melt    []float64 // cell-mean surface melt/runoff [mm]
	IceMelt []float64 // cell-mean lake-ice melt [m]
	Qnet    []float64 // cell-mean net surface exchange [W/m²]
	MaxMbe  float64   // largest absolute mass-balance residual seen [m]
}

// Evaluate runs the series, cells in parallel within each timestep. The
// first non-convergent cell aborts the run at the end of its timestep; its
// error is the one returned.
func (d *Domain) Evaluate(fs *ForcingSeries) (*Results, error) {
	nt, nc := len(fs.T), len(d.Cells)
	fnc := float64(nc)
	res := &Results{
		Melt:    make([]float64, nt),
		IceMelt: make([]float64, nt),
		Qnet:    make([]float64, nt),
	}

	var once sync.Once
	var ferr error
	fxs := make([]lakeice.Fluxes, nc)
	for j := range fs.T {
		var wg sync.WaitGroup
		wg.Add(nc)
		for i, c := range d.Cells {
			go func(i int, c *Cell) {
				defer wg.Done()
				frc := fs.Atm[j]
				frc.FracPrv = c.Lake.FracIce
				fx, err := d.slv.IceMelt(&frc, fs.Pcp[j], &c.Snow, &c.Lake)
				if err != nil {
					once.Do(func() { ferr = fmt.Errorf("cell %d timestep %d (%v): %w", i, j, fs.T[j], err) })
					return
				}
				fxs[i] = fx
			}(i, c)
		}
		wg.Wait()
		if ferr != nil {
			return nil, ferr
		}
		for i, c := range d.Cells {
			res.Melt[j] += fxs[i].Melt / fnc
			res.IceMelt[j] += fxs[i].IceMelt / fnc
			res.Qnet[j] += fxs[i].Qnet / fnc
			if mbe := math.Abs(c.Snow.MassError); mbe > res.MaxMbe {
				res.MaxMbe = mbe
			}
		}
	}
	return res, nil
}

// EvaluateSerial runs the series one cell at a time with a progress display.
func (d *Domain) EvaluateSerial(fs *ForcingSeries) (*Results, error) {
	nt, nc := len(fs.T), len(d.Cells)
	fnc := float64(nc)
	res := &Results{
		Melt:    make([]float64, nt),
		IceMelt: make([]float64, nt),
		Qnet:    make([]float64, nt),
	}

	uiprogress.Start()
	timestep := make(chan string)
	bar := uiprogress.AddBar(nt).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-timestep
	})

	for j, t := range fs.T {
		timestep <- fmt.Sprint(t)
		for i, c := range d.Cells {
			frc := fs.Atm[j]
			frc.FracPrv = c.Lake.FracIce
			fx, err := d.slv.IceMelt(&frc, fs.Pcp[j], &c.Snow, &c.Lake)
			if err != nil {
				close(timestep)
				uiprogress.Stop()
				return nil, fmt.Errorf("cell %d timestep %d (%v): %w", i, j, t, err)
			}
			res.Melt[j] += fx.Melt / fnc
			res.IceMelt[j] += fx.IceMelt / fnc
			res.Qnet[j] += fx.Qnet / fnc
			if mbe := math.Abs(c.Snow.MassError); mbe > res.MaxMbe {
				res.MaxMbe = mbe
			}
		}
		bar.Incr()
	}
	close(timestep)
	uiprogress.Stop()

	return res, nil
}
