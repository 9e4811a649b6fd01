package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/rezi"
)

func runReplay(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(defaultStderr, "ERROR: read %s: %s\n", path, err)
		return 1
	}

	log := &traceLog{}
	n, err := rezi.DecBinary(data, log)
	if err != nil {
		fmt.Fprintf(defaultStderr, "ERROR: REZI decode: %s\n", err)
		return 1
	}
	if n != len(data) {
		fmt.Fprintf(defaultStderr, "ERROR: REZI decoded byte count mismatch; only consumed %d/%d bytes\n", n, len(data))
		return 1
	}

	for i, ev := range log.Events {
		switch ev.Kind {
		case "shift":
			fmt.Printf("%d: shift %s\n", i, ev.Terminal)
		case "reduce":
			fmt.Printf("%d: reduce %s\n", i, ev.Rule)
		default:
			fmt.Printf("%d: %s\n", i, ev.Kind)
		}
	}

	return 0
}
