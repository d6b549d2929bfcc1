package main

import "unit-converter/internal/cli"

func main() {
	cli.Execute()
}
