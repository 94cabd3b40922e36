/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/dxfkit/dxfkit/cmd/dxfkit/cmd"
)

func main() {
	cmd.Execute()
}
