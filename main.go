package main

import (
	"os"

	"github.com/d-saravanan/logvalues/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
