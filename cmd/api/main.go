package main

import (
	"context"
	"time"

	"github.com/karnaval/go-costume-catalog/cmd/setup"
	"github.com/karnaval/go-costume-catalog/internal/common/graceful"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(ctx, s.Config, s.NewRelic,
		s.RepoSQL,
		s.RepoCache,
		s.Service,
		s.Metrics,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, httpServer.Stop())

	xlog.Infof(ctx, "http server listening on :%d", s.Config.App.HTTPPort)

	errs := make(chan error, len(starters))
	graceful.StartProcessAtBackground(errs, starters...)
	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, errs, stoppers...)

	xlog.Info(ctx, "http server stopped!")
}
