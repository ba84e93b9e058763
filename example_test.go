package execlist_test

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/joeycumines/go-execlist"
)

// Demonstrates the single-trigger contract: pairs registered before the fire
// are drained in registration order, and pairs registered after dispatch
// immediately, within Register.
func ExampleList() {
	list := execlist.NewList(nil)

	for _, name := range [...]string{`A`, `B`, `C`} {
		name := name
		if err := list.Register(func() { fmt.Println(`dispatched`, name) }, execlist.Synchronous()); err != nil {
			panic(err)
		}
	}

	list.Fire()

	// the list is now permanently fired - late registrations don't queue
	if err := list.Register(func() { fmt.Println(`dispatched D`) }, execlist.Synchronous()); err != nil {
		panic(err)
	}

	// a second fire is a no-op
	list.Fire()

	//output:
	//dispatched A
	//dispatched B
	//dispatched C
	//dispatched D
}

// Demonstrates concurrent registration racing a single fire, using the
// lock-free strategy. Every pair lands on exactly one of the two dispatch
// paths - drained by Fire, or dispatched immediately within Register.
func ExampleList_concurrent() {
	const (
		numWorkers         = 10
		numPairsPerWorker  = 5
		expectedDispatches = numWorkers * numPairsPerWorker
	)

	list := execlist.NewList(&execlist.ListConfig{Strategy: execlist.StrategyCAS})

	var (
		dispatched atomic.Int64
		wg         sync.WaitGroup
	)

	wg.Add(numWorkers + 1)
	for iter := 0; iter < numWorkers; iter++ {
		go func() {
			defer wg.Done()
			for iter := 0; iter < numPairsPerWorker; iter++ {
				if err := list.Register(func() { dispatched.Add(1) }, execlist.Synchronous()); err != nil {
					panic(err)
				}
			}
		}()
	}
	go func() {
		defer wg.Done()
		list.Fire()
	}()

	// once every Register and the Fire have returned, every pair has been
	// dispatched (the runner is synchronous)
	wg.Wait()

	fmt.Println(`total dispatches:`, dispatched.Load())

	//output:
	//total dispatches: 50
}

// Demonstrates adapting an existing executor via RunnerFunc, e.g. a worker
// pool - the list delegates execution, it never runs callbacks itself.
func ExampleRunnerFunc() {
	tasks := make(chan execlist.Task, 1)
	pool := execlist.RunnerFunc(func(task execlist.Task) { tasks <- task })

	list := execlist.NewList(nil)
	if err := list.Register(func() { fmt.Println(`ran on the pool`) }, pool); err != nil {
		panic(err)
	}

	list.Fire()

	// the callback was handed off, not run - run it now
	(<-tasks)()

	//output:
	//ran on the pool
}
