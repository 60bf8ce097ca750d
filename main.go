package main

import "github.com/dotcommander/archcritic/cmd"

func main() {
	cmd.Execute()
}
