package main

import (
	"github.com/picomenu/picomenu/internal/ui/cli"
)

func main() {
	cli.Execute()
}
