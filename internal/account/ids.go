package account

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator yields opaque, unique transaction ids.
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator issues random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string { return uuid.NewString() }

// CounterGenerator issues "tx-1", "tx-2", ... and is safe to share.
type CounterGenerator struct {
	n atomic.Uint64
}

func (c *CounterGenerator) NextID() string {
	return "tx-" + strconv.FormatUint(c.n.Add(1), 10)
}

// NewIDGenerator picks a generator by strategy name ("uuid" or "counter").
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "uuid":
		return UUIDGenerator{}, nil
	case "counter":
		return &CounterGenerator{}, nil
	}
	return nil, fmt.Errorf("unknown id strategy %q", strategy)
}
