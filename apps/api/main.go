package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	echoapi "github.com/trezcool/lms/apps/api/echo"
	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/core/analytics"
	"github.com/trezcool/lms/core/auth"
	"github.com/trezcool/lms/core/course"
	"github.com/trezcool/lms/core/pyq"
	"github.com/trezcool/lms/core/syllabus"
	"github.com/trezcool/lms/services/logger"
	"github.com/trezcool/lms/storage"
)

func main() {
	conf, err := core.NewConfig()
	must(err)

	// =========================================================================
	// Initialize App

	apiLogger := logsvc.NewLogger(conf)
	if rl, ok := apiLogger.(*logsvc.RollbarLogger); ok {
		defer rl.Wait()
	}
	apiLogger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer apiLogger.Info("Application stopped")

	store, err := storage.Open(context.Background(), conf)
	if err != nil {
		apiLogger.Fatal("opening store", err, map[string]interface{}{"engine": conf.Database.Engine})
	}
	defer func() {
		if err := store.Close(); err != nil {
			apiLogger.Error("closing store", err)
		}
	}()

	tokens, err := auth.NewTokenIssuer(conf)
	if err != nil {
		apiLogger.Fatal("configuring tokens", err)
	}

	server := echoapi.NewServer(conf, apiLogger, nil, &echoapi.Deps{
		AuthSvc:      auth.NewService(storage.NewUserRepository(store), tokens, conf.Auth.DefaultRole),
		CourseSvc:    course.NewService(),
		SyllabusSvc:  syllabus.NewService(),
		AnalyticsSvc: analytics.NewService(apiLogger),
		PyqSvc:       pyq.NewService(),
	})

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	if conf.Server.DebugHost != "" {
		expvar.NewString("build").Set(conf.Build)
		expvar.NewString("env").Set(conf.Env)
		expvar.NewString("token_mode").Set(tokens.Mode())

		go func() {
			if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
				apiLogger.Error(fmt.Sprintf("debug server closed: %v", err), err)
			}
		}()
	}

	// =========================================================================
	// Start API Service

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		apiLogger.Error(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		apiLogger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			apiLogger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				apiLogger.Error(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
