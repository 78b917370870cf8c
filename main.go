package main

import "github.com/theirongolddev/budget/cmd"

func main() {
	cmd.Execute()
}
