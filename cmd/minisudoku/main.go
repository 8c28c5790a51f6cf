package main

import "github.com/mcoot/minisudoku-go/internal/cli"

func main() {
	cli.Execute()
}
