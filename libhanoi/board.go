package libhanoi

import (
	"github.com/peg-systems/gohanoi/gohanoi"
)

// Board is the full puzzle state: three pegs and a disk count fixed at
// creation. The multiset of disks across the pegs is always exactly 1..N.
type Board struct {
	pegs  [gohanoi.NumPegs]*Peg
	disks int
}

// NewBoard places disks 1..n on peg A, smallest on top.
func NewBoard(n int) *Board {
	b := &Board{
		disks: n,
	}
	for i := range b.pegs {
		b.pegs[i] = newPeg()
	}
	for d := n; d >= 1; d-- {
		b.pegs[gohanoi.PegA].push(d)
	}
	return b
}

func (b *Board) DiskCount() int {
	return b.disks
}

func (b *Board) Peg(id gohanoi.PegID) *Peg {
	return b.pegs[id]
}

// Solved reports whether every disk has reached peg C.
func (b *Board) Solved() bool {
	return b.pegs[gohanoi.PegC].Size() == b.disks
}

// tryMove transfers the top disk of src onto dst if the move is legal.
// A move is legal when src is non-empty and, for a non-empty dst, the src
// top is both smaller than the dst top and of opposite parity. On an
// illegal move no state changes.
func (b *Board) tryMove(src, dst gohanoi.PegID) bool {
	from, to := b.pegs[src], b.pegs[dst]

	top, ok := from.Top()
	if !ok {
		return false
	}

	if onto, ok := to.Top(); ok {
		if top&1 == onto&1 {
			return false
		}
		if top > onto {
			return false
		}
	}

	from.pop()
	to.push(top)
	return true
}

// Validate checks that every peg strictly increases front to back and that
// the three pegs together hold exactly the disks 1..N.
func (b *Board) Validate() error {
	seen := make([]bool, b.disks+1)
	total := 0

	for _, p := range b.pegs {
		prev := 0
		for _, d := range p.Disks() {
			if d <= prev {
				return gohanoi.ErrDiskOrder
			}
			prev = d

			if d < 1 || d > b.disks || seen[d] {
				return gohanoi.ErrDisksLost
			}
			seen[d] = true
			total++
		}
	}

	if total != b.disks {
		return gohanoi.ErrDisksLost
	}
	return nil
}
