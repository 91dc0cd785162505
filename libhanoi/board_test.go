package libhanoi

import (
	"reflect"
	"testing"

	"github.com/peg-systems/gohanoi/gohanoi"
)

// boardOf builds a board of n disks with the given peg contents, each listed
// top first. Used to reach states the solver alone would not produce.
func boardOf(n int, pegs [gohanoi.NumPegs][]int) *Board {
	b := NewBoard(0)
	b.disks = n
	for i, stack := range pegs {
		for j := len(stack) - 1; j >= 0; j-- {
			b.pegs[i].push(stack[j])
		}
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(4)

	if got := b.Peg(gohanoi.PegA).Disks(); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("peg A after NewBoard(4): %v", got)
	}
	if !b.Peg(gohanoi.PegB).IsEmpty() || !b.Peg(gohanoi.PegC).IsEmpty() {
		t.Fatal("pegs B and C must start empty")
	}
	if b.Solved() {
		t.Fatal("a fresh 4-disk board is not solved")
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("fresh board failed validation: %v", err)
	}
}

func TestPegOrder(t *testing.T) {
	p := newPeg()
	if !p.IsEmpty() {
		t.Fatal("new peg not empty")
	}
	if _, ok := p.Top(); ok {
		t.Fatal("Top on an empty peg reported ok")
	}

	p.push(3)
	p.push(2)
	p.push(1)

	if top, ok := p.Top(); !ok || top != 1 {
		t.Fatalf("Top = %d, want 1", top)
	}
	if d, ok := p.pop(); !ok || d != 1 {
		t.Fatalf("pop = %d, want 1", d)
	}
	if got := p.Disks(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("Disks = %v, want [2 3]", got)
	}
}

func TestTryMoveSizeRule(t *testing.T) {
	b := boardOf(3, [gohanoi.NumPegs][]int{{2, 3}, {1}, nil})

	// 2 onto 1 breaks the size rule.
	if b.tryMove(gohanoi.PegA, gohanoi.PegB) {
		t.Fatal("larger disk moved onto smaller")
	}
	// 1 onto 2 is legal.
	if !b.tryMove(gohanoi.PegB, gohanoi.PegA) {
		t.Fatal("legal move rejected")
	}
	if got := b.Peg(gohanoi.PegA).Disks(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("peg A after move: %v", got)
	}
}

func TestTryMoveParityRule(t *testing.T) {
	// 1 onto 3 obeys the size rule but both are odd.
	b := boardOf(4, [gohanoi.NumPegs][]int{{1}, {3, 4}, {2}})
	if b.tryMove(gohanoi.PegA, gohanoi.PegB) {
		t.Fatal("odd disk landed on odd disk")
	}

	// 2 onto 4: size-legal, both even.
	b = boardOf(4, [gohanoi.NumPegs][]int{{2}, {4}, {1, 3}})
	if b.tryMove(gohanoi.PegA, gohanoi.PegB) {
		t.Fatal("even disk landed on even disk")
	}

	// 1 onto 2 is opposite parity and size-legal.
	b = boardOf(2, [gohanoi.NumPegs][]int{{1}, {2}, nil})
	if !b.tryMove(gohanoi.PegA, gohanoi.PegB) {
		t.Fatal("legal opposite-parity move rejected")
	}
}

func TestTryMoveEmptyPegs(t *testing.T) {
	b := boardOf(1, [gohanoi.NumPegs][]int{nil, {1}, nil})

	if b.tryMove(gohanoi.PegA, gohanoi.PegB) {
		t.Fatal("move from an empty peg succeeded")
	}
	if !b.tryMove(gohanoi.PegB, gohanoi.PegC) {
		t.Fatal("move onto an empty peg rejected")
	}
}

func TestTryMoveFailureLeavesState(t *testing.T) {
	b := boardOf(3, [gohanoi.NumPegs][]int{{3}, {1, 2}, nil})

	if b.tryMove(gohanoi.PegA, gohanoi.PegB) {
		t.Fatal("3 onto 1 succeeded")
	}
	if got := b.Peg(gohanoi.PegA).Disks(); !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("peg A changed by a failed move: %v", got)
	}
	if got := b.Peg(gohanoi.PegB).Disks(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("peg B changed by a failed move: %v", got)
	}
}

func TestValidate(t *testing.T) {
	if err := boardOf(3, [gohanoi.NumPegs][]int{{1, 2, 3}, nil, nil}).Validate(); err != nil {
		t.Fatalf("valid board rejected: %v", err)
	}

	// Inverted order on a peg.
	if err := boardOf(2, [gohanoi.NumPegs][]int{{2, 1}, nil, nil}).Validate(); err != gohanoi.ErrDiskOrder {
		t.Fatalf("err = %v, want ErrDiskOrder", err)
	}

	// Missing disk.
	if err := boardOf(3, [gohanoi.NumPegs][]int{{1, 3}, nil, nil}).Validate(); err != gohanoi.ErrDisksLost {
		t.Fatalf("err = %v, want ErrDisksLost", err)
	}

	// Duplicate disk across pegs.
	if err := boardOf(2, [gohanoi.NumPegs][]int{{1}, {1}, nil}).Validate(); err != gohanoi.ErrDisksLost {
		t.Fatalf("err = %v, want ErrDisksLost", err)
	}
}
