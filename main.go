package main

import "github.com/samsaffron/skilldeck/cmd"

func main() {
	cmd.Execute()
}
