package util

import (
	"os"
	"syscall"
)

// ShutdownSignals cancel the root command context.
var ShutdownSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}
