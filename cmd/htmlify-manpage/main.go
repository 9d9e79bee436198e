package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/htmlify/cmd/htmlify"
	"github.com/arthur-debert/htmlify/internal/version"
)

func main() {
	rootCmd := htmlify.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "HTMLIFY",
		Section: "1",
		Source:  "htmlify " + version.Version,
		Manual:  "htmlify manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
