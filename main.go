package main

import (
	"fmt"
	"os"

	"notedays/internal/cli"
	"notedays/internal/config"
	"notedays/internal/logs"
)

func main() {
	if err := config.EnsureConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config file: %v\n", err)
	}

	code := cli.Run(os.Args[1:])
	logs.Close()
	os.Exit(code)
}
