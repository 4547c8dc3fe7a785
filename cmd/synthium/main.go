package main

import "github.com/sinagolchin/SYNTHIUM/cmd/synthium/commands"

func main() {
	commands.Execute()
}
