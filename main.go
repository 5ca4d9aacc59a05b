package main

import "goroster/cmd"

func main() {
	cmd.Execute()
}
