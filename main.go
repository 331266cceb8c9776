package main

import "github.com/zjrosen/warble/cmd"

func main() {
	cmd.Execute()
}
