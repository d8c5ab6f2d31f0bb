// Command feyforge runs the FeyForge API server, its database maintenance
// tasks, and a command-line client for local and server-synced campaign data.
//
// Usage:
//
//	feyforge serve
//	feyforge migrate up|down|status
//	feyforge cleanup-tokens
//	feyforge local campaign|npc|codex ...
//	feyforge remote login|campaigns|world|conversations|encounters ...
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
