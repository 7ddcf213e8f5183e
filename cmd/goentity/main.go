package main

import "github.com/reoring/goentity/internal/cli"

func main() {
	cli.Execute()
}
