package libhanoi

import (
	"os"

	"github.com/plan-systems/klog"

	"github.com/peg-systems/gohanoi/gohanoi"
)

// Candidate orders for the two sweeps of one outer iteration. The forward
// order depends on the parity of the disk count, fixed at solve entry; the
// backward order does not. Each sweep attempts its candidates in order,
// skipping any whose source is the peg that received the previous disk.
var (
	fwdOdd = [3]gohanoi.Move{
		{From: gohanoi.PegA, To: gohanoi.PegC},
		{From: gohanoi.PegA, To: gohanoi.PegB},
		{From: gohanoi.PegB, To: gohanoi.PegC},
	}
	fwdEven = [3]gohanoi.Move{
		{From: gohanoi.PegA, To: gohanoi.PegB},
		{From: gohanoi.PegA, To: gohanoi.PegC},
		{From: gohanoi.PegB, To: gohanoi.PegC},
	}
	bwd = [3]gohanoi.Move{
		{From: gohanoi.PegC, To: gohanoi.PegA},
		{From: gohanoi.PegC, To: gohanoi.PegB},
		{From: gohanoi.PegB, To: gohanoi.PegA},
	}
)

type solver struct {
	board   *Board
	forward [3]gohanoi.Move
	lastDst gohanoi.PegID
	moves   int64
	onMove  func(gohanoi.Move)
}

// Solve runs the greedy driver on a fresh board of n disks and reports the
// move count. n must be at least 1.
func Solve(n int, opts gohanoi.SolveOpts) (gohanoi.Result, error) {
	if n < 1 {
		return gohanoi.Result{}, gohanoi.ErrBadDiskCount
	}

	s := &solver{
		board:   NewBoard(n),
		forward: fwdEven,
		lastDst: gohanoi.PegC, // sentinel: the invented prior move landed on C
		onMove:  opts.OnMove,
	}
	if n&1 == 1 {
		s.forward = fwdOdd
	}

	klog.V(1).Infof("solving %d disks", n)
	if err := s.run(); err != nil {
		return gohanoi.Result{}, err
	}
	klog.V(1).Infof("%d disks solved in %d moves", n, s.moves)

	return gohanoi.Result{
		Disks: n,
		Moves: s.moves,
	}, nil
}

func (s *solver) run() error {
	for !s.board.Solved() {
		if dumpEnabled {
			s.board.dump(os.Stdout)
		}

		// Forward sweep: restart from the top of the candidate list after
		// every successful move; stop after a full pass with none.
		moved := false
		for swept := true; swept; {
			swept = false
			for _, mv := range s.forward {
				if s.attempt(mv) {
					swept = true
					moved = true
					break
				}
			}
		}

		// Backward sweep: at most one move, then back to the forward sweep.
		for _, mv := range bwd {
			if s.attempt(mv) {
				moved = true
				break
			}
		}

		if !moved && !s.board.Solved() {
			return gohanoi.ErrStuck
		}
	}
	return nil
}

// attempt applies mv unless it would undo the previous move or is illegal.
func (s *solver) attempt(mv gohanoi.Move) bool {
	if s.lastDst == mv.From {
		return false
	}
	if !s.board.tryMove(mv.From, mv.To) {
		return false
	}

	s.moves++
	s.lastDst = mv.To
	if s.onMove != nil {
		s.onMove(mv)
	}
	return true
}
