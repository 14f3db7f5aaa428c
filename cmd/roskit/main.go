package main

import "roskit/internal/cli"

func main() {
	cli.Execute()
}
