package main

import "github.com/svgies/svgie/cmd"

func main() {
	cmd.Execute()
}
