/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pfp

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// rangeQueue is a fixed-capacity ring buffer handing range descriptors from
// a single producer to N worker consumers. It mirrors the free_slots /
// data_items semaphore pair and single consumer mutex of the original
// pc_init/pc_destroy helpers: the producer owns its index and never takes
// the mutex, since only one producer ever exists.
type rangeQueue[T any] struct {
	buf        []T
	freeSlots  *semaphore.Weighted
	dataItems  *semaphore.Weighted
	consumerMu sync.Mutex
	prodIdx    uint64
	consIdx    uint64
}

// newRangeQueue creates a queue of the given capacity. data_items starts
// empty: the semaphore is constructed full and immediately drained so that
// consumers block until the producer posts a range.
func newRangeQueue[T any](capacity int) *rangeQueue[T] {
	q := &rangeQueue[T]{
		buf:       make([]T, capacity),
		freeSlots: semaphore.NewWeighted(int64(capacity)),
		dataItems: semaphore.NewWeighted(int64(capacity)),
	}

	_ = q.dataItems.Acquire(context.Background(), int64(capacity))
	return q
}

// push waits for a free slot, writes the range at the producer's index, and
// signals data availability. Only the caller's single producer goroutine may
// call push.
func (this *rangeQueue[T]) push(ctx context.Context, r T) error {
	if err := this.freeSlots.Acquire(ctx, 1); err != nil {
		return newError(ErrPrimitiveFailure, "queue push: %v", err)
	}

	idx := this.prodIdx
	this.prodIdx++
	this.buf[idx%uint64(len(this.buf))] = r
	this.dataItems.Release(1)
	return nil
}

// pop waits for an available range, claims the next consumer slot under the
// mutex, and signals the freed slot back to the producer.
func (this *rangeQueue[T]) pop(ctx context.Context) (T, error) {
	var zero T

	if err := this.dataItems.Acquire(ctx, 1); err != nil {
		return zero, newError(ErrPrimitiveFailure, "queue pop: %v", err)
	}

	this.consumerMu.Lock()
	idx := this.consIdx
	this.consIdx++
	this.consumerMu.Unlock()

	r := this.buf[idx%uint64(len(this.buf))]
	this.freeSlots.Release(1)
	return r, nil
}
