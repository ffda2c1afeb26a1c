package main

import (
	"fmt"
	"os"

	"fileproc/internal/fileproc"
)

func main() {
	if err := fileproc.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
