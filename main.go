package main

import "filescope/cmd"

func main() {
	cmd.Execute()
}
