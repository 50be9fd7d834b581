package main

import "quickstack/cmd"

func main() {
	cmd.Execute()
}
