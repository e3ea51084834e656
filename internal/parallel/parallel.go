// Package parallel provides a simple fork-and-wait helper to spread
// independent per-index work over the available CPUs.
package parallel

import (
	"runtime"
	"sync"
)

// Execute processes the half-open range [iStart, iEnd) in parallel and waits
// for completion. work is called with disjoint sub-ranges covering the input
// range; it must not assume any ordering between sub-ranges.
func Execute(iStart, iEnd int, work func(int, int)) {
	nbIterations := iEnd - iStart
	nbTasks := runtime.NumCPU()
	nbIterationsPerCPU := nbIterations / nbTasks

	// more CPUs than iterations: a CPU will work on exactly one iteration
	if nbIterationsPerCPU < 1 {
		nbIterationsPerCPU = 1
		nbTasks = nbIterations
	}

	var wg sync.WaitGroup

	extraTasks := iEnd - (iStart + nbTasks*nbIterationsPerCPU)
	extraTasksOffset := 0

	for i := 0; i < nbTasks; i++ {
		wg.Add(1)
		start := iStart + i*nbIterationsPerCPU + extraTasksOffset
		end := start + nbIterationsPerCPU
		if extraTasks > 0 {
			end++
			extraTasks--
			extraTasksOffset++
		}
		go func() {
			work(start, end)
			wg.Done()
		}()
	}

	wg.Wait()
}
