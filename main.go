package main

import "github.com/theirongolddev/splitlog/cmd"

func main() {
	cmd.Execute()
}
