package gohanoi

import "errors"

// Errors
var (
	ErrBadDiskCount = errors.New("disk count must be at least 1")
	ErrDiskOrder    = errors.New("peg disks out of order")
	ErrDisksLost    = errors.New("board does not hold disks 1..N")
	ErrStuck        = errors.New("no legal move from a non-terminal board")
)
