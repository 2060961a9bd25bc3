package main

import "github.com/notargets/isomesh/cmd"

func main() {
	cmd.Execute()
}
