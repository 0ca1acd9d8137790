package main

import "figlens/cmd/figlens-cli/cmd"

func main() {
	cmd.Execute()
}
