package libhanoi

import (
	"fmt"
	"io"
	"strings"

	"github.com/peg-systems/gohanoi/gohanoi"
)

var pegLabels = [gohanoi.NumPegs]byte{'A', 'B', 'C'}

// dump writes a snapshot of the board: one line per peg, disks listed
// bottom to top, followed by a blank line.
func (b *Board) dump(out io.Writer) {
	buf := strings.Builder{}
	buf.Grow(64)

	for i, p := range b.pegs {
		buf.WriteByte(pegLabels[i])
		buf.WriteByte(':')

		disks := p.Disks()
		for j := len(disks) - 1; j >= 0; j-- {
			fmt.Fprintf(&buf, " %d", disks[j])
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')

	_, _ = io.WriteString(out, buf.String())
}
