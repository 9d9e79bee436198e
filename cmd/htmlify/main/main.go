package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/htmlify/cmd/htmlify"
	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/ui/styles"
)

func main() {
	rootCmd := htmlify.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(errors.ExitCode(err))
	}
}
