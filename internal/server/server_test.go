package server

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hellopool/internal/config"
	"hellopool/pkg/pool"
)

func startServer(t *testing.T, cfg *config.Config, p *pool.Pool) (*Server, <-chan error) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	srv := New(cfg, p, logrus.NewEntry(logger))
	require.NoError(t, srv.Listen())

	served := make(chan error, 1)
	go func() { served <- srv.Serve() }()
	return srv, served
}

func get(t *testing.T, addr net.Addr, path string) string {
	t.Helper()

	conn, err := net.Dial("tcp", addr.String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("GET " + path + " HTTP/1.1\r\nHost: localhost\r\n\r\n"))
	require.NoError(t, err)

	response, err := io.ReadAll(conn)
	require.NoError(t, err)
	return string(response)
}

func TestServer_ServesConnectionsThroughPool(t *testing.T) {
	p, err := pool.New(&pool.Config{Size: 2})
	require.NoError(t, err)

	cfg := &config.Config{ListenAddr: "127.0.0.1:0", DocRoot: writeTestPages(t)}
	srv, served := startServer(t, cfg, p)

	for i := 0; i < 5; i++ {
		response := get(t, srv.Addr(), "/")
		assert.Contains(t, response, "HTTP/1.1 200 OK")
		assert.Contains(t, response, "<h1>Hello!</h1>")
	}

	response := get(t, srv.Addr(), "/missing")
	assert.Contains(t, response, "HTTP/1.1 404 NOT FOUND")

	require.NoError(t, srv.Close())
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Close")
	}
	require.NoError(t, p.Close())
}

func TestServer_ConnectionBudget(t *testing.T) {
	p, err := pool.New(&pool.Config{Size: 1})
	require.NoError(t, err)
	defer p.Close()

	cfg := &config.Config{ListenAddr: "127.0.0.1:0", DocRoot: writeTestPages(t), MaxConnections: 2}
	srv, served := startServer(t, cfg, p)

	assert.Contains(t, get(t, srv.Addr(), "/"), "HTTP/1.1 200 OK")
	assert.Contains(t, get(t, srv.Addr(), "/"), "HTTP/1.1 200 OK")

	// The listener shuts itself down once the budget is spent.
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after the connection budget")
	}
}

func TestServer_DispatchFailureDropsConnection(t *testing.T) {
	p, err := pool.New(&pool.Config{Size: 1})
	require.NoError(t, err)

	cfg := &config.Config{ListenAddr: "127.0.0.1:0", DocRoot: writeTestPages(t)}
	srv, served := startServer(t, cfg, p)
	defer srv.Close()

	// A closed pool rejects every job; the server must report the
	// failure and drop the connection rather than retry.
	require.NoError(t, p.Close())

	conn, err := net.Dial("tcp", srv.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	response, err := io.ReadAll(conn)
	assert.NoError(t, err)
	assert.Empty(t, response)

	require.NoError(t, srv.Close())
	select {
	case <-served:
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Close")
	}
}
