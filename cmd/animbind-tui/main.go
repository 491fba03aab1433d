package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rtomasi/animbind/internal/tui"
)

func main() {
	docFlag := flag.String("doc", "", "HTML document to resolve against")
	flag.Parse()

	if *docFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: animbind-tui -doc <file.html>")
		os.Exit(1)
	}

	if err := tui.Run(tui.Options{DocumentPath: *docFlag}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
