package main

import (
	"os"

	"github.com/ethanbaker/stringanalyzer/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
