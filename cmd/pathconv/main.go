package main

import (
	"os"

	"github.com/Jumpaku/go-pathfs/cmd/pathconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
