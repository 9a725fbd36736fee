package main

import (
	"fmt"
	"laleme/internal/di"
	"laleme/internal/structures"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	flags := &structures.CliFlags{}
	pflag.StringVarP(&flags.ConfigPath, "config", "c", "config/laleme.yaml", "path to the yaml config file")
	pflag.BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror logs to the console")
	pflag.Parse()

	app, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %s\n", err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %s\n", err)
		os.Exit(1)
	}
}
