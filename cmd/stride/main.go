package main

import "github.com/strideml/stride/cmd/stride/cmd"

func main() {
	cmd.Execute()
}
