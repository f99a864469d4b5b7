package main

import "lakekit/internal/cli"

func main() {
	cli.Execute()
}
