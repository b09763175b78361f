package main

import (
	"context"
	"os"

	"github.com/BenjaminKobjolke/FMANGoConemu/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
