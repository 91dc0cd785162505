package libhanoi

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Peg is one stack of disk sizes with the front of the stack as the top:
// the front disk is the one available to move. A peg is well formed when
// its sizes strictly increase from front to back.
type Peg struct {
	disks *linkedliststack.Stack
}

func newPeg() *Peg {
	return &Peg{
		disks: linkedliststack.New(),
	}
}

func (p *Peg) IsEmpty() bool {
	return p.disks.Empty()
}

func (p *Peg) Size() int {
	return p.disks.Size()
}

// Top returns the size of the movable disk, or ok == false on an empty peg.
func (p *Peg) Top() (int, bool) {
	v, ok := p.disks.Peek()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (p *Peg) push(d int) {
	p.disks.Push(d)
}

func (p *Peg) pop() (int, bool) {
	v, ok := p.disks.Pop()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// Disks returns a snapshot of the peg contents, top first.
func (p *Peg) Disks() []int {
	vals := p.disks.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}
	return out
}
