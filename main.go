package main

import "github.com/theirongolddev/splitabill/cmd"

func main() {
	cmd.Execute()
}
