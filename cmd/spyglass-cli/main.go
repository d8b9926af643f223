package main

import "spyglass/cmd/spyglass-cli/cmd"

func main() {
	cmd.Execute()
}
