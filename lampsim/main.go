package main

import "github.com/sarchlab/lampsim/lampsim/cmd"

func main() {
	cmd.Execute()
}
