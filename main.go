package main

import "github.com/carve-tools/carve/cmd"

func main() {
	cmd.Execute()
}
