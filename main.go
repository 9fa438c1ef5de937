package main

import (
	"os"

	"go.withmatt.com/narrow/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
