// Package gohanoi is the public surface of the iterative Towers of Hanoi
// solver: peg identifiers, move and result value types, and solve options.
// The implementation lives in libhanoi.
package gohanoi

// PegID identifies one of the three pegs of a board.
type PegID int32

const (
	// PegA holds all disks when a solve starts.
	PegA PegID = 0

	// PegB is the spare peg.
	PegB PegID = 1

	// PegC is the destination peg; a solve is complete when every disk is on it.
	PegC PegID = 2

	// NumPegs is the fixed peg count of a board.
	NumPegs = 3

	// DefaultDisks is used when the caller supplies no usable disk count.
	DefaultDisks = 3

	// MaxEasyDisks is the largest disk count that solves near-instantly.
	// Larger counts still solve but the move count doubles per disk.
	MaxEasyDisks = 25
)

// Move records one disk transfer from the top of From onto To.
type Move struct {
	From PegID
	To   PegID
}

// Result reports a completed solve.
type Result struct {

	// Disks is the disk count the board was created with.
	Disks int

	// Moves is the number of successful moves made, always 2^Disks - 1.
	Moves int64
}

// SolveOpts adjusts how a solve is observed without changing its move sequence.
type SolveOpts struct {

	// OnMove, when non-nil, is called once per successful move, in order.
	OnMove func(Move)
}
