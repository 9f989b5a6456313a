package main

import "brefstats/internal/cli"

func main() {
	cli.Execute()
}
