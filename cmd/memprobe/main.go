// Command memprobe inspects how memory access is served on this host.
//
// Usage:
//
//	memprobe platform
//	memprobe layout [--index N]
//	memprobe stress --goroutines 8 --iterations 100000 --strategy alignment-aware
//	memprobe dump FILE --offset 0 --length 64 --width 4 --big-endian
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
