package main

import "github.com/visnughosh/portfolio/internal/cli"

func main() {
	cli.Execute()
}
