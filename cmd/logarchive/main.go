package main

import (
	"os"

	"github.com/convox/logarchive/pkg/cli"
)

var (
	version = "dev"
)

func main() {
	c := cli.New("logarchive", version)

	os.Exit(c.Execute(os.Args[1:]))
}
