package execlist

// RunnerFunc implements Runner, e.g. to adapt an existing executor or
// worker pool.
type RunnerFunc func(task Task)

// Submit calls x(task).
func (x RunnerFunc) Submit(task Task) { x(task) }

// Synchronous returns a Runner that runs each task inline, on the goroutine
// that submits it, before Submit returns.
func Synchronous() Runner { return synchronousRunner{} }

// Goroutine returns a Runner that runs each task on a new goroutine. It
// makes no ordering promise between tasks.
func Goroutine() Runner { return goroutineRunner{} }

type (
	synchronousRunner struct{}
	goroutineRunner   struct{}
)

func (synchronousRunner) Submit(task Task) { task() }

func (goroutineRunner) Submit(task Task) { go task() }
