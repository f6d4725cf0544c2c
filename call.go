package deepl

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/codes"
)

// call is the shared engine behind every endpoint builder. An endpoint
// embeds a call parameterized with its result type and supplies a run
// closure that builds, fires and decodes the request from the builder's
// current field state.
//
// Send latches on first use: the run closure executes exactly once, and
// every later Send returns the cached outcome. Fluent setters invoked
// after the first Send therefore cannot affect the result.
type call[R any] struct {
	api  *API
	name string
	run  func(ctx context.Context) (R, error)

	once   sync.Once
	result R
	err    error
}

// Send drives the call to completion, performing at most one network
// request for the lifetime of the builder.
func (c *call[R]) Send(ctx context.Context) (R, error) {
	c.once.Do(func() {
		ctx, span := c.api.tracer.Start(ctx, "deepl."+c.name)
		defer span.End()

		c.result, c.err = c.run(ctx)
		if c.err != nil {
			span.RecordError(c.err)
			span.SetStatus(codes.Error, c.err.Error())
			c.api.logger.Debug("call failed", "endpoint", c.name, "error", c.err)
		}
	})

	return c.result, c.err
}

// SendAsync starts the call in a new goroutine and returns a handle to
// wait on. Cancellation goes through ctx, as with Send.
func (c *call[R]) SendAsync(ctx context.Context) *Pending[R] {
	p := &Pending[R]{done: make(chan struct{})}

	go func() {
		defer close(p.done)
		p.result, p.err = c.Send(ctx)
	}()

	return p
}

// Pending represents an in-flight or completed async call.
type Pending[R any] struct {
	done   chan struct{}
	result R
	err    error
}

// Done returns a channel that is closed when the call completes.
func (p *Pending[R]) Done() <-chan struct{} { return p.done }

// Wait blocks until the call completes and returns its outcome.
func (p *Pending[R]) Wait() (R, error) {
	<-p.done
	return p.result, p.err
}
