// Package simple hands out booking ids from an in-process counter,
// starting at 1. Ids are only unique within a run, which matches the
// lifetime of the in-memory store they index.
package simple

import (
	"context"
	"sync/atomic"
)

type Generator struct {
	counter atomic.Int64
}

func New() *Generator {
	//nolint:exhaustruct
	return &Generator{}
}

func (g *Generator) GetID(_ context.Context) (int, error) {
	return int(g.counter.Add(1)), nil
}
