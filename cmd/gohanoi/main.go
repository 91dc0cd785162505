package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/peg-systems/gohanoi/gohanoi"
	"github.com/peg-systems/gohanoi/libhanoi"
)

func main() {

	klog.InitFlags(nil)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	disks, err := disksCount(flag.Args())
	if err != nil {
		klog.Fatalf("%v", err)
	}

	start := time.Now()
	result, err := libhanoi.Solve(disks, gohanoi.SolveOpts{})
	if err != nil {
		klog.Fatalf("solve failed: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("%d disks done in %d moves\n", result.Disks, result.Moves)
	fmt.Printf("It took %d us\n", elapsed.Microseconds())

	klog.Flush()
}

// disksCount reads the disk count from the command line, falling back to
// the default when the argument is missing or not a sensible count. A
// negative argument is read as its absolute value.
func disksCount(args []string) (int, error) {
	if len(args) < 1 {
		fmt.Printf("\nNeed provide a number of disks on program input!\nFor now taking default %d disks\n\n",
			gohanoi.DefaultDisks)
		return gohanoi.DefaultDisks, nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrapf(err, "bad disk count %q", args[0])
	}
	if n < 0 {
		n = -n
	}

	if n < 1 {
		fmt.Printf("\nDisks count %d does not sound correct. You need at least one disk.\nWill keep default %d disks.\n\n",
			n, gohanoi.DefaultDisks)
		return gohanoi.DefaultDisks, nil
	}

	if n > gohanoi.MaxEasyDisks {
		fmt.Printf("\nLarge number of disks may take long to move. Working on it, be patient....\n\n")
	}
	return n, nil
}
