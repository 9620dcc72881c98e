package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/neoinbox/internal/admin"
	"github.com/dmitrijs2005/neoinbox/internal/server"
	"github.com/dmitrijs2005/neoinbox/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := server.NewLogger(cfg, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	us, db, err := server.NewUserService(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = admin.Run(ctx, os.Args[1:], us, os.Stdin, os.Stdout)
	_ = db.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
