package main

import (
	"os"

	"github.com/cleared-dev/aoiro/internal/commands"
)

func main() {
	os.Exit(commands.Execute())
}
