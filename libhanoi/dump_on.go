//go:build hanoidump

package libhanoi

// Builds tagged hanoidump emit a board snapshot before each outer iteration
// of the driver.
const dumpEnabled = true
