package main

import "github.com/jdrake/marsrover/cmd"

func main() {
	cmd.Execute()
}
