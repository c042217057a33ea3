package main

import "github.com/andrescamacho/traikoa-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
