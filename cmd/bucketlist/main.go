package main

import (
	"context"
	"log"

	"github.com/eaportal/bucketlist/internal/cli"
	"github.com/eaportal/bucketlist/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
