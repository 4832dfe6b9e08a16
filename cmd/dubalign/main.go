package main

import "dubalign/internal/cli"

func main() {
	cli.Main()
}
