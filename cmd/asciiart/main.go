package main

import "github.com/blacktop/go-asciiart/cmd/asciiart/cmd"

func main() {
	cmd.Execute()
}
