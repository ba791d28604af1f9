package main

import "dvdio/cmd"

func main() {
	cmd.Execute()
}
