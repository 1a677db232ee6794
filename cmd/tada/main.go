package main

import (
	"context"
	"os"

	"github.com/idilsaglam/tada/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args))
}
