package main

import "github.com/noodlekit/noodle/internal/cli"

func main() {
	cli.Execute()
}
