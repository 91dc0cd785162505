//go:build !hanoidump

package libhanoi

const dumpEnabled = false
