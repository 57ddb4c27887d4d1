package main

import (
	"github.com/mxcd/gtlb-api/internal/cli"
)

func main() {
	cli.Execute()
}
