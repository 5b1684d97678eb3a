package main

import "github.com/nextlevelbuilder/westmarch/cmd"

func main() {
	cmd.Execute()
}
