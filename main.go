package main

import "github.com/jsphweid/chordwheel/cmd"

func main() {
	cmd.Execute()
}
