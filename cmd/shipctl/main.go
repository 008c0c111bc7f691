package main

import (
	"fmt"
	"os"

	"github.com/pkordes/shiptrack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shipctl:", err)
		os.Exit(1)
	}
}
