package main

import "github.com/angelmondragon/shopdesk/internal/cli"

func main() {
	cli.Execute()
}
