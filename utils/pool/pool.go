package pool

import (
	"context"
	"sync"

	"github.com/alpacahq/holidays/utils/log"
)

// Pool runs a job on every input of a channel with at most a fixed
// number of goroutines. The first job error is kept for Wait.
type Pool struct {
	workerQ chan struct{}
	f       func(ctx context.Context, input interface{}) error
	wg      sync.WaitGroup

	mu  sync.Mutex
	err error
}

// NewPool creates a new worker pool with a goroutine limit
// and a job function to execute on the incoming data.
func NewPool(routines int, job func(ctx context.Context, input interface{}) error) *Pool {
	if routines < 1 {
		routines = 1
	}
	q := make(chan struct{}, routines)
	for i := 0; i < routines; i++ {
		q <- struct{}{}
	}
	return &Pool{
		workerQ: q,
		f:       job,
	}
}

// Work is a blocking call that starts the pool working on a data input
// channel. It returns when c is closed or ctx is done; inputs still
// queued after ctx is done are dropped.
func (p *Pool) Work(ctx context.Context, c <-chan interface{}) {
	for v := range c {
		if err := ctx.Err(); err != nil {
			p.setErr(err)
			return
		}
		select {
		case <-ctx.Done():
			p.setErr(ctx.Err())
			return
		case <-p.workerQ:
		}
		p.wg.Add(1)
		go func(input interface{}) {
			defer func() {
				p.workerQ <- struct{}{}
				p.wg.Done()
			}()
			if err := p.f(ctx, input); err != nil {
				log.Error("job failed: %v", err)
				p.setErr(err)
			}
		}(v)
	}
}

// Wait waits until the pool is finished and returns the first job error.
func (p *Pool) Wait() error {
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Pool) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err == nil {
		p.err = err
	}
}
