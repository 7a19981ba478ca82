package services

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// LoadProfile describes the synthetic work the v1 order path performs before
// touching the store: a CPU hash burn, short-lived scratch allocations, and a
// fixed delay. The zero value is a no-op.
type LoadProfile struct {
	Delay          time.Duration
	HashRounds     int
	ScratchObjects int
}

type scratch struct {
	ID   int
	Data string
}

// Apply burns CPU, churns the allocator, then sleeps. The result of the work is
// discarded; only its cost matters.
func (p LoadProfile) Apply() {
	for i := 0; i < p.HashRounds; i++ {
		sum := sha256.Sum256(fmt.Appendf(nil, "heavy-work-%d-%d", i, time.Now().UnixNano()))
		_ = sum
	}
	if p.ScratchObjects > 0 {
		waste := make([]scratch, p.ScratchObjects)
		for i := range waste {
			waste[i] = scratch{ID: i, Data: fmt.Sprintf("waste-%d", i)}
		}
		_ = len(waste)
	}
	if p.Delay > 0 {
		time.Sleep(p.Delay)
	}
}
