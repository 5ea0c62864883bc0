package history

import (
	"sync"

	"github.com/stockpulse/quote-data/internal/model"
)

// Buffer is a fixed-capacity FIFO buffer of quote readings. When a new
// reading is appended at capacity, the oldest reading is evicted.
//
// The buffer is an index-wrapped array: head marks the oldest entry and
// writes land at (head+count) mod capacity.
type Buffer struct {
	mu    sync.Mutex
	buf   []model.QuoteReading
	head  int // oldest entry
	count int

	totalAppended int64
	totalEvicted  int64
}

// New creates a buffer holding at most capacity readings.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{
		buf: make([]model.QuoteReading, capacity),
	}
}

// Append adds a reading, evicting the oldest one if the buffer is full.
func (b *Buffer) Append(r model.QuoteReading) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == len(b.buf) {
		// Overwrite the oldest slot and advance head.
		b.buf[b.head] = r
		b.head = (b.head + 1) % len(b.buf)
		b.totalEvicted++
	} else {
		b.buf[(b.head+b.count)%len(b.buf)] = r
		b.count++
	}
	b.totalAppended++
}

// Readings returns the buffered readings oldest-first. The returned slice
// is a copy; mutating it does not affect the buffer.
func (b *Buffer) Readings() []model.QuoteReading {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]model.QuoteReading, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.buf[(b.head+i)%len(b.buf)]
	}
	return out
}

// Len returns the number of buffered readings.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Stats returns lifetime append and eviction counts.
func (b *Buffer) Stats() (appended, evicted int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalAppended, b.totalEvicted
}
