package main

import "github.com/pfrederiksen/tsw/internal/cli"

func main() {
	cli.Execute()
}
