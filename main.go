package main

import "github.com/bobby/zonesync/cmd"

func main() {
	cmd.Execute()
}
