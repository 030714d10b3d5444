package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/core/auth"
	"github.com/trezcool/lms/services/logger"
	"github.com/trezcool/lms/storage"
)

func main() {
	conf, err := core.NewConfig()
	errAndDie(err)

	logger := logsvc.NewLogger(conf)

	tokens, err := auth.NewTokenIssuer(conf)
	errAndDie(err)

	cli := &commandLine{
		conf:   conf,
		logger: logger,
		out:    os.Stdout,
		openStore: func() (core.Store, error) {
			return storage.Open(context.Background(), conf)
		},
		newAuthSvc: func(store core.Store) *auth.Service {
			return auth.NewService(storage.NewUserRepository(store), tokens, conf.Auth.DefaultRole)
		},
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
