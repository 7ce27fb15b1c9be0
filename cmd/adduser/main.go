package main

import (
	"context"
	"flag"
	"os"

	"github.com/abismo-rpg/comandos/internal/platform/config"
	"github.com/abismo-rpg/comandos/internal/tools/adduser"
)

func main() {
	cfg, err := adduser.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := adduser.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("create profile: %v", err)
	}
}
