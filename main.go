package main

import "github.com/nikogura/portfolio-builder/cmd"

func main() {
	cmd.Execute()
}
