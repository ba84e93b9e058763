package execlist

import (
	"sync"
	"testing"
)

func TestSynchronous(t *testing.T) {
	var ran bool
	Synchronous().Submit(func() { ran = true })
	if !ran {
		t.Error(`expected the task to run before Submit returned`)
	}
}

func TestGoroutine(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	ch := make(chan struct{})
	Goroutine().Submit(func() {
		defer wg.Done()
		<-ch
	})
	// the task must not run inline - Submit returned while it blocks on ch
	close(ch)
	wg.Wait()
}

func TestRunnerFunc_Submit(t *testing.T) {
	var submitted Task
	runner := RunnerFunc(func(task Task) { submitted = task })
	var ran bool
	runner.Submit(func() { ran = true })
	if submitted == nil {
		t.Fatal(`expected the task to be handed to the func`)
	}
	if ran {
		t.Fatal(`expected the task not to run until invoked`)
	}
	submitted()
	if !ran {
		t.Error(`expected the task to run when invoked`)
	}
}
