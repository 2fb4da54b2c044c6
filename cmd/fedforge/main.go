package main

import (
	"fmt"
	"os"

	"github.com/fedforge/fedforge/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fedforge:", err)
		os.Exit(1)
	}
}
