package main

import (
	"flag"
	"log"

	"github.com/caseshowcase/showcase-backend/cmd"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "local-dev"

func main() {
	shouldRunServer := flag.Bool("server", false, "Run the website")
	shouldRunCleanupTrigger := flag.Bool("cleanup-trigger", false, "Run the case images cleanup trigger")
	flag.Parse()

	compiledConfig := cmd.CompiledConfig{Version: Version}

	switch {
	case *shouldRunServer:
		if err := cmd.RunServer(compiledConfig); err != nil {
			log.Fatal(err)
		}
	case *shouldRunCleanupTrigger:
		if err := cmd.RunCleanupTrigger(compiledConfig); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("nothing to run: use --server or --cleanup-trigger")
	}
}
