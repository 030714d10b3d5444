package tests

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"

	echoapi "github.com/trezcool/lms/apps/api/echo"
	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/core/analytics"
	"github.com/trezcool/lms/core/auth"
	"github.com/trezcool/lms/core/course"
	"github.com/trezcool/lms/core/pyq"
	"github.com/trezcool/lms/core/syllabus"
	"github.com/trezcool/lms/services/logger"
	"github.com/trezcool/lms/storage"
	"github.com/trezcool/lms/storage/inmem"
	"github.com/trezcool/lms/tests"
)

type (
	httpTest = testutil.HTTPTest
	httpErr  = testutil.HTTPErr
)

var (
	newRequest       = testutil.NewRequest
	marshalObj       = testutil.MarshalObj
	checkCodeAndData = testutil.CheckCodeAndData
)

type testApp struct {
	*echoapi.Server
	conf     *core.Config
	store    core.Store
	shutdown chan os.Signal
}

func setupWithStore(t *testing.T, conf *core.Config, store core.Store) *testApp {
	logger := logsvc.NewZeroLoggerWithWriter(io.Discard, conf)

	tokens, err := auth.NewTokenIssuer(conf)
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}
	shutdown := make(chan os.Signal, 1)
	srv := echoapi.NewServer(conf, logger, shutdown, &echoapi.Deps{
		AuthSvc:      auth.NewService(storage.NewUserRepository(store), tokens, conf.Auth.DefaultRole),
		CourseSvc:    course.NewService(),
		SyllabusSvc:  syllabus.NewService(),
		AnalyticsSvc: analytics.NewService(logger),
		PyqSvc:       pyq.NewService(),
	})
	return &testApp{Server: srv, conf: conf, store: store, shutdown: shutdown}
}

func setup(t *testing.T) *testApp {
	return setupWithStore(t, core.NewTestConfig(), inmem.Open())
}

func (app *testApp) run(t *testing.T, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		if tt.WantCode == 0 {
			tt.WantCode = http.StatusOK
		}
		t.Run(tt.Name, func(t *testing.T) {
			req, rec := newRequest(tt.Method, tt.Path, tt.Body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

// failingStore fails every write with err.
type failingStore struct {
	*inmem.Store
	err error
}

func (s failingStore) Put(context.Context, string, []byte) error { return s.err }
