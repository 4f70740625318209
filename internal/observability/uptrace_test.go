package observability

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "fantasy-cricket-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no server when disabled")
	}
	if err := StopPprofServer(srv, logging.NewNop(), time.Second); err != nil {
		t.Fatalf("stop pprof: %v", err)
	}
}

func TestStart_AllDisabled(t *testing.T) {
	rt, err := Start(config.Config{ServiceName: "fantasy-cricket-api"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start runtime: %v", err)
	}
	if rt.PprofAddr() != "" {
		t.Fatalf("expected no pprof listener, got %q", rt.PprofAddr())
	}
	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown runtime: %v", err)
	}
}

func TestStart_PprofServesProfiles(t *testing.T) {
	rt, err := Start(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start runtime: %v", err)
	}
	defer func() { _ = rt.Shutdown(context.Background()) }()

	resp, err := http.Get("http://" + rt.PprofAddr() + "/debug/pprof/cmdline")
	if err != nil {
		t.Fatalf("get pprof cmdline: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected pprof status: %d", resp.StatusCode)
	}

	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown runtime: %v", err)
	}
	if rt.PprofAddr() != "" {
		t.Fatalf("expected pprof listener to be released")
	}
}

func TestStart_PprofBindFailure(t *testing.T) {
	if _, err := Start(config.Config{PprofEnabled: true, PprofAddr: "256.0.0.1:bad"}, logging.NewNop()); err == nil {
		t.Fatalf("expected bind failure")
	}
}
