package main

import "cpuwatch/pkg/commands"

func main() {
	commands.Execute()
}
