package observability

import (
	"context"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

const pprofStopTimeout = 5 * time.Second

// Runtime is the process telemetry started for one service run.
type Runtime struct {
	shutdownTracing func(context.Context) error
	stopProfiling   func() error
	pprof           *http.Server
	logger          *logging.Logger
}

// Start brings up tracing, continuous profiling and the pprof listener.
// Anything already started is stopped again when a later step fails.
func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{
		shutdownTracing: func(context.Context) error { return nil },
		stopProfiling:   func() error { return nil },
		logger:          logger,
	}

	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, crerr.Wrap(err, "init uptrace")
	}
	rt.shutdownTracing = shutdownTracing

	stopProfiling, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = rt.Shutdown(context.Background())
		return nil, crerr.Wrap(err, "init pyroscope")
	}
	rt.stopProfiling = stopProfiling

	pprofSrv, err := StartPprofServer(cfg, logger)
	if err != nil {
		_ = rt.Shutdown(context.Background())
		return nil, crerr.Wrap(err, "start pprof server")
	}
	rt.pprof = pprofSrv

	return rt, nil
}

// PprofAddr is empty when the pprof listener is disabled.
func (r *Runtime) PprofAddr() string {
	if r == nil || r.pprof == nil {
		return ""
	}
	return r.pprof.Addr
}

// Shutdown stops everything Start brought up, flushing traces last so spans
// from the other shutdowns are exported.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	var err error
	if stopErr := StopPprofServer(r.pprof, r.logger, pprofStopTimeout); stopErr != nil {
		err = crerr.CombineErrors(err, crerr.Wrap(stopErr, "stop pprof server"))
	}
	r.pprof = nil
	if stopErr := r.stopProfiling(); stopErr != nil {
		err = crerr.CombineErrors(err, crerr.Wrap(stopErr, "stop pyroscope"))
	}
	if stopErr := r.shutdownTracing(ctx); stopErr != nil {
		err = crerr.CombineErrors(err, crerr.Wrap(stopErr, "shutdown uptrace"))
	}
	return err
}
