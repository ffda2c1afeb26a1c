package main

import (
	"fmt"
	"os"

	"fileproc/internal/fpx"
)

func main() {
	if err := fpx.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
