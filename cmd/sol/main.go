package main

import (
	"os"

	"github.com/1F47E/sol/pkg/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
