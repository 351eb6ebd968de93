package nats

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/themeswitch/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// portFile records the client port of the server owning a data directory.
const portFile = "nats.port"

// Runtime bundles the connection with the embedded server, if this process
// owns one.
type Runtime struct {
	// Server is nil in node mode, when another process owns the server.
	Server *server.Server
	Conn   *nats.Conn
	// JS is nil when the server was started without a data directory.
	JS jetstream.JetStream
	// Primary is true when this process owns Server.
	Primary bool

	dataDir string
	port    int
}

// Start connects to the server another process runs for dataDir, or starts
// one that later processes can join. An empty dataDir gives a private
// in-process server without JetStream.
func Start(dataDir string) (*Runtime, error) {
	if dataDir == "" {
		ns, err := StartEmbeddedNATS("", false)
		if err != nil {
			return nil, fmt.Errorf("starting nats: %w", err)
		}
		nc, err := ConnectInProcess(ns)
		if err != nil {
			ns.Shutdown()
			return nil, fmt.Errorf("connecting to nats: %w", err)
		}
		return &Runtime{Server: ns, Conn: nc, Primary: true}, nil
	}

	if nc := TryConnectExisting(dataDir); nc != nil {
		logger.Info("Connected to existing NATS server (node mode)")
		return withJetStream(&Runtime{Conn: nc, dataDir: dataDir})
	}

	logger.Info("Starting NATS server (primary mode)")
	ns, err := StartEmbeddedNATS(dataDir, true)
	if err != nil {
		return nil, fmt.Errorf("starting nats: %w", err)
	}
	port := serverPort(ns)

	nc, err := ConnectToPort(port)
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}

	rt := &Runtime{Server: ns, Conn: nc, Primary: true, dataDir: dataDir, port: port}
	if err := writePort(dataDir, port); err != nil {
		_ = Shutdown(nc, ns)
		return nil, err
	}
	return withJetStream(rt)
}

// Connect attaches to a server at url that themeswitch does not manage.
func Connect(url string) (*Runtime, error) {
	nc, err := nats.Connect(url, nats.Name("themeswitch"), nats.Timeout(2*time.Second))
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}
	return withJetStream(&Runtime{Conn: nc})
}

func withJetStream(rt *Runtime) (*Runtime, error) {
	js, err := CreateJetStream(rt.Conn)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("creating jetstream: %w", err)
	}
	rt.JS = js
	return rt, nil
}

// PreferenceBucket returns the preference key-value bucket, creating it if needed.
func (r *Runtime) PreferenceBucket(ctx context.Context) (jetstream.KeyValue, error) {
	if r.JS == nil {
		return nil, errors.New("jetstream disabled: no data directory")
	}
	return SetupPreferenceBucket(ctx, r.JS)
}

// Close drains the connection and, in primary mode, stops the server and
// removes the port file.
func (r *Runtime) Close() error {
	if r.Primary && r.dataDir != "" {
		removePort(r.dataDir, r.port)
	}
	return Shutdown(r.Conn, r.Server)
}

// TryConnectExisting connects to the server recorded in dataDir's port file.
// It returns nil when there is no file or nothing answers on the port.
func TryConnectExisting(dataDir string) *nats.Conn {
	data, err := os.ReadFile(filepath.Join(dataDir, portFile))
	if err != nil {
		return nil
	}
	port, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || port <= 0 {
		logger.Warn("Ignoring malformed NATS port file in %s", dataDir)
		return nil
	}

	nc, err := nats.Connect(portURL(port),
		nats.Name("themeswitch"),
		nats.Timeout(500*time.Millisecond),
		nats.NoReconnect(),
	)
	if err != nil {
		logger.Debug("No NATS server answering on port %d: %v", port, err)
		return nil
	}
	return nc
}

// ConnectToPort connects to a local server over TCP.
func ConnectToPort(port int) (*nats.Conn, error) {
	nc, err := nats.Connect(portURL(port), nats.Name("themeswitch"))
	if err != nil {
		logger.Error("Failed to connect to NATS on port %d: %v", port, err)
		return nil, err
	}
	return nc, nil
}

func portURL(port int) string {
	return fmt.Sprintf("nats://127.0.0.1:%d", port)
}

func serverPort(ns *server.Server) int {
	if addr, ok := ns.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

func writePort(dataDir string, port int) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, portFile), []byte(strconv.Itoa(port)), 0644); err != nil {
		return fmt.Errorf("writing nats port file: %w", err)
	}
	return nil
}

// removePort deletes the port file unless a newer primary has replaced it.
func removePort(dataDir string, port int) {
	path := filepath.Join(dataDir, portFile)
	data, err := os.ReadFile(path)
	if err != nil || strings.TrimSpace(string(data)) != strconv.Itoa(port) {
		return
	}
	if err := os.Remove(path); err != nil {
		logger.Warn("Failed to remove NATS port file: %v", err)
	}
}

// StartEmbeddedNATS starts an embedded NATS server. JetStream is enabled only
// when dataDir is non-empty, storing under dataDir/nats. With listen set the
// server accepts clients on a random loopback port so other processes can
// join; otherwise it is reachable in-process only.
func StartEmbeddedNATS(dataDir string, listen bool) (*server.Server, error) {
	logger.Debug("Starting embedded NATS server (data dir: %q, listen: %v)", dataDir, listen)

	opts := &server.Options{
		JetStream:  dataDir != "",
		DontListen: !listen,
		NoSigs:     true,
	}
	if dataDir != "" {
		opts.StoreDir = filepath.Join(dataDir, "nats")
	}
	if listen {
		opts.Host = "127.0.0.1"
		opts.Port = server.RANDOM_PORT
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		logger.Error("Failed to create NATS server: %v", err)
		return nil, err
	}

	go ns.Start()

	if !ns.ReadyForConnections(4 * time.Second) {
		logger.Error("NATS server failed to start within 4s timeout")
		ns.Shutdown()
		return nil, errors.New("nats server failed to start within timeout")
	}

	logger.Debug("NATS server ready for connections")
	return ns, nil
}

// ConnectInProcess creates an in-process connection to the embedded NATS server.
// This connection does not use network ports and communicates directly with the server.
func ConnectInProcess(ns *server.Server) (*nats.Conn, error) {
	logger.Debug("Connecting to NATS server in-process")
	conn, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		logger.Error("Failed to connect to NATS in-process: %v", err)
		return nil, err
	}
	logger.Debug("Connected to NATS successfully")
	return conn, nil
}

// CreateJetStream creates a JetStream context from a NATS connection.
func CreateJetStream(nc *nats.Conn) (jetstream.JetStream, error) {
	return jetstream.New(nc)
}

// Shutdown gracefully shuts down the NATS connection and server.
// It first drains and closes the connection, then shuts down the server
// with a timeout to allow in-flight operations to complete.
func Shutdown(nc *nats.Conn, ns *server.Server) error {
	logger.Debug("Starting NATS shutdown")

	// Close the connection first (drain buffered messages)
	if nc != nil {
		// Drain flushes pending publishes and lets subscription
		// handlers finish; bounded so shutdown cannot hang.
		drainDone := make(chan error, 1)
		go func() {
			drainDone <- nc.Drain()
		}()

		select {
		case err := <-drainDone:
			if err != nil {
				logger.Warn("NATS drain failed, forcing close: %v", err)
				nc.Close()
			} else {
				logger.Debug("NATS connection drained successfully")
			}
		case <-time.After(2 * time.Second):
			logger.Warn("NATS drain timed out after 2s, forcing close")
			nc.Close()
		}
	}

	// Shutdown the server with a grace period
	if ns != nil {
		logger.Debug("Shutting down NATS server")
		ns.Shutdown()

		// WaitForShutdown with timeout to prevent hanging
		shutdownDone := make(chan struct{})
		go func() {
			ns.WaitForShutdown()
			close(shutdownDone)
		}()

		select {
		case <-shutdownDone:
			logger.Debug("NATS server shut down cleanly")
		case <-time.After(5 * time.Second):
			logger.Error("NATS server shutdown timed out after 5s")
			return errors.New("NATS server shutdown timed out")
		}
	}

	logger.Debug("NATS shutdown complete")
	return nil
}
