package main

import "github.com/mj1618/uibuilder/cmd"

func main() {
	cmd.Execute()
}
