package main

import "github.com/retailops/storectl/cmd/storectl/commands"

func main() {
	commands.Execute()
}
