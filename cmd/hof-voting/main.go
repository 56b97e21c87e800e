package main

import "github.com/pfrederiksen/hof-voting/internal/cli"

func main() {
	cli.Execute()
}
