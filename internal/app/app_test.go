package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/banksajt/internal/config"
	"github.com/polkiloo/banksajt/internal/metrics"
	testhelpers "github.com/polkiloo/banksajt/internal/test"
	"github.com/polkiloo/banksajt/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestProbe() *worker.StorageProbe {
	return worker.NewStorageProbe(&testhelpers.BackendStub{}, metrics.New(), 10*time.Millisecond, discardLogger())
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewStorageProbeUsesConfig(t *testing.T) {
	probe := newStorageProbe(probeParams{
		Storage: &testhelpers.BackendStub{},
		Metrics: metrics.New(),
		Config:  &config.Config{HealthPollInterval: 15 * time.Second},
		Logger:  discardLogger(),
	})
	if probe == nil {
		t.Fatal("expected storage probe instance")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Probe:      newTestProbe(),
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- hook.OnStop(context.Background())
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("on stop returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}

	select {
	case <-shutdowner.Called:
		t.Fatal("shutdown must not be requested on a clean stop")
	default:
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "bad addr"}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Probe:      newTestProbe(),
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}

func TestLifecycleRecorderAppend(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	recorder.Append(fx.Hook{})
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected hook to be appended")
	}
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := shutdowner.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}

func TestRegisterLifecycleShutdownTimeoutBoundsServer(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	var once sync.Once

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(entered) })
		<-release
	})
	addr := freeAddr(t)
	server := &http.Server{Addr: addr, Handler: mux}

	recorder := &testhelpers.LifecycleRecorder{}
	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)},
		Logger:     discardLogger(),
		Server:     server,
		Probe:      newTestProbe(),
		Config:     &config.Config{ShutdownTimeout: 50 * time.Millisecond},
	})
	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	go func() {
		for i := 0; i < 50; i++ {
			resp, err := http.Get("http://" + addr + "/")
			if err == nil {
				_ = resp.Body.Close()
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("request never reached the handler")
	}

	start := time.Now()
	err := hook.OnStop(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded from in-flight request, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("shutdown took %v, expected the configured 50ms bound", elapsed)
	}
}
