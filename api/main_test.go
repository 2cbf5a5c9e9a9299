package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/products-api/internal/config"
	"github.com/rs/zerolog"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	return ln
}

func TestServe_GracefulShutdownWaitsForInFlightRequests(t *testing.T) {
	started := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(200 * time.Millisecond)
		io.WriteString(w, "done")
	})}
	ln := listen(t)
	url := "http://" + ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() { serveErr <- serve(ctx, srv, ln, 5*time.Second, zerolog.Nop()) }()

	type result struct {
		body string
		err  error
	}
	resCh := make(chan result, 1)
	go func() {
		resp, err := http.Get(url)
		if err != nil {
			resCh <- result{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		resCh <- result{body: string(b), err: err}
	}()

	<-started
	cancel()

	res := <-resCh
	if res.err != nil {
		t.Fatalf("in-flight request failed: %v", res.err)
	}
	if res.body != "done" {
		t.Errorf("expected body done, got %q", res.body)
	}

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after shutdown")
	}

	if _, err := http.Get(url); err == nil {
		t.Error("expected new connections to be refused after shutdown")
	}
}

func TestServe_ShutdownTimeout(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	started := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	})}
	ln := listen(t)

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() { serveErr <- serve(ctx, srv, ln, 50*time.Millisecond, zerolog.Nop()) }()

	go http.Get("http://" + ln.Addr().String())
	<-started
	cancel()

	err := <-serveErr
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected shutdown to time out, got %v", err)
	}
}

func TestServe_ListenerFailure(t *testing.T) {
	ln := listen(t)
	ln.Close()

	err := serve(context.Background(), &http.Server{}, ln, time.Second, zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error from a closed listener")
	}
}

func TestRun_DatabaseUnreachable(t *testing.T) {
	cfg := &config.Config{
		Port:            "0",
		ShutdownTimeout: time.Second,
		DB: config.DBConfig{
			Driver: config.DriverMySQL,
			Host:   "127.0.0.1",
			Port:   "1",
			User:   "root",
			Name:   "products",
		},
	}

	err := run(context.Background(), cfg, zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error when the database is unreachable")
	}
	if !strings.Contains(err.Error(), "could not connect to database") {
		t.Errorf("unexpected error %v", err)
	}
}
