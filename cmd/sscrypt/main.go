package main

import (
	"os"

	"sscrypt/cmd/sscrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
