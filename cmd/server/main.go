package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/macreserve/internal/buildinfo"
	"github.com/dmitrijs2005/macreserve/internal/server"
	"github.com/dmitrijs2005/macreserve/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
