package services

import (
	"strconv"
	"sync/atomic"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/google/uuid"
)

// uuidGenerator issues time-ordered UUIDv7 ids. The uuid package keeps v7 values
// strictly increasing within a process, so ids created in the same millisecond still differ.
type uuidGenerator struct{}

// NewUUIDGenerator returns the default transaction id generator.
func NewUUIDGenerator() portssvc.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}

// SequenceGenerator issues "1", "2", "3", ... and is safe for concurrent use.
type SequenceGenerator struct {
	next atomic.Uint64
}

func (g *SequenceGenerator) NewID() string {
	return strconv.FormatUint(g.next.Add(1), 10)
}

var (
	_ portssvc.IDGenerator = uuidGenerator{}
	_ portssvc.IDGenerator = (*SequenceGenerator)(nil)
)
