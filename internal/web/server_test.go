package web

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavanAnganna90/portfolio/internal/config"
)

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestServer_StartAndShutdown(t *testing.T) {
	cfg := &config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         freePort(t),
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		IdleTimeout:  time.Second,
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	srv := NewServer(cfg, handler, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, "127.0.0.1:"+strconv.Itoa(cfg.Port), srv.Addr())

	errCh := srv.Start()

	var resp *http.Response
	require.Eventually(t, func() bool {
		r, err := http.Get("http://" + srv.Addr() + "/")
		if err != nil {
			return false
		}
		resp = r
		return true
	}, 2*time.Second, 20*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	err, open := <-errCh
	assert.NoError(t, err)
	assert.False(t, open)
}

func TestServer_StartReportsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: l.Addr().(*net.TCPAddr).Port}
	srv := NewServer(cfg, http.NotFoundHandler(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	select {
	case err := <-srv.Start():
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http server error")
	case <-time.After(2 * time.Second):
		t.Fatal("expected listen error")
	}
}
