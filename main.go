package main

import "github.com/takeshy/simshots/cmd"

func main() {
	cmd.Execute()
}
