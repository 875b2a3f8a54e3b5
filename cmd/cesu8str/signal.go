package main

import (
	"os"
	"os/signal"
	"syscall"
)

// ignoreSIGPIPE makes writes to a closed stdout pipe fail with EPIPE instead
// of killing the process, so the engine can wind down on its own terms.
func ignoreSIGPIPE() {
	signal.Notify(make(chan os.Signal, 1), syscall.SIGPIPE)
}
