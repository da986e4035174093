package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/factionwatch/internal/app"
	"github.com/dmitrijs2005/factionwatch/internal/buildinfo"
	"github.com/dmitrijs2005/factionwatch/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)

	if err != nil {
		log.Fatalf("%v", err)
	}

	a.Run(ctx)

}
