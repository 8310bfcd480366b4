package main

import "sovscan/cmd"

func main() {
	cmd.Execute()
}
