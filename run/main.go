package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/maseology/lakeice"
	"github.com/maseology/lakeice/sim"
	"github.com/maseology/mmio"
)

func main() {

	const (
		latitude = 44.5 // southern-Ontario lake belt
		yr       = 2023
		ncell    = 64
		swq0     = .15  // initial snow water equivalent [m]
		hice0    = .4   // initial lake-ice thickness [m]
		vol0     = 42e6 // lake volume [m³]
		area0    = 6e6  // lake surface area [m²]
		mcn      = 1000 // mass-balance verification samples
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	opt := lakeice.NewDefaultOptions()

	// mass-balance verification batch
	if mbe := sim.GenerateSamples(opt, mcn, 1234, "samples.massbalance.csv"); mbe > 1e-9 {
		log.Fatalf("mass-balance verification failed, max residual %e m", mbe)
	}
	tt.Print("Mass-balance verification complete\n")

	// run a year over the lake field
	frc := sim.Synthetic(latitude, yr)
	dom := sim.NewDomain(opt, ncell, swq0, hice0, vol0, area0)
	res, err := dom.Evaluate(frc)
	if err != nil {
		log.Fatalln(err) // non-convergence: no meaningful state to continue with
	}

	sm, si := 0., 0.
	for j := range res.Melt {
		sm += res.Melt[j]
		si += res.IceMelt[j]
	}
	fmt.Printf(" total surface melt: %.1f mm   lake-ice melt: %.3f m   max mbe: %e m\n", sm, si, res.MaxMbe)

	nt := len(frc.T)
	dt, ml, im, qn := make([]interface{}, nt), make([]interface{}, nt), make([]interface{}, nt), make([]interface{}, nt)
	for j := range frc.T {
		dt[j] = frc.T[j]
		ml[j] = res.Melt[j]
		im[j] = res.IceMelt[j]
		qn[j] = res.Qnet[j]
	}
	mmio.WriteCSV("lakemelt.csv", "date,melt,icemelt,qnet", dt, ml, im, qn)
}
