/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/swhkit/swhedit/cmd/swhedit/cmd"

func main() {
	cmd.Execute()
}
