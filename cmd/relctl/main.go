package main

import (
	"github.com/NVIDIA/relctl/pkg/cli"
)

func main() {
	cli.Execute()
}
