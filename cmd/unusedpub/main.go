package main

import "github.com/unusedpub/unusedpub/internal/cli"

func main() {
	cli.Execute()
}
