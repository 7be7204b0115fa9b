package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/checkout/internal/config"
	testhelpers "github.com/polkiloo/checkout/internal/test"
)

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
	if server.ReadHeaderTimeout != readHeaderTimeout {
		t.Fatalf("expected read header timeout %v, got %v", readHeaderTimeout, server.ReadHeaderTimeout)
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

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	addr := freeAddr(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	server := &http.Server{Addr: addr, Handler: mux}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     testhelpers.DiscardLogger(),
		Server:     server,
		Config:     &config.Config{ShutdownTimeout: 100 * time.Millisecond, Currency: "CAD"},
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	if err := recorder.Start(context.Background()); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	var served bool
	for i := 0; i < 50 && !served; i++ {
		resp, err := http.Get("http://" + addr + "/ping")
		if err == nil {
			_ = resp.Body.Close()
			served = resp.StatusCode == http.StatusNoContent
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !served {
		t.Fatal("expected server to answer after start")
	}

	done := make(chan error, 1)
	go func() { done <- recorder.Stop(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("on stop failed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}

	select {
	case <-shutdowner.Called:
		t.Fatal("graceful stop must not trigger shutdowner")
	default:
	}
}

type brokenListener struct{ net.Listener }

func (brokenListener) Accept() (net.Conn, error) { return nil, errors.New("accept failed") }
func (brokenListener) Close() error              { return nil }
func (brokenListener) Addr() net.Addr            { return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)} }

func TestRegisterLifecycleReportsListenError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     testhelpers.DiscardLogger(),
		Server:     &http.Server{Addr: "bad addr"},
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	err := recorder.Start(context.Background())
	if err == nil || !strings.Contains(err.Error(), "listen on bad addr") {
		t.Fatalf("expected listen error from start, got %v", err)
	}
}

func TestRegisterLifecycleShutdownOnServeError(t *testing.T) {
	original := listen
	listen = func(context.Context, string, string) (net.Listener, error) { return brokenListener{}, nil }
	t.Cleanup(func() { listen = original })

	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     testhelpers.DiscardLogger(),
		Server:     &http.Server{Addr: "127.0.0.1:0"},
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.Start(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = recorder.Stop(context.Background())
}
