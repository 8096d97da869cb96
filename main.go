package main

import "promptclip/cmd"

func main() {
	cmd.Execute()
}
