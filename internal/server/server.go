package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Options configures the SSH server
type Options struct {
	// AuthorizedKeysPath lists the public keys allowed to connect
	AuthorizedKeysPath string
	// HostKeyDir holds id_ed25519, generated on first start
	HostKeyDir string
	Host       string
	// NewModel builds the model served to one session
	NewModel func() *ui.Model
	Port     string
}

// Server serves the result browser over SSH
type Server struct {
	address            string
	authorizedKeysPath string
	newModel           func() *ui.Model
	wishServer         *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(opts Options) (*Server, error) {
	if opts.NewModel == nil {
		return nil, errors.New("server needs a model factory")
	}

	if err := os.MkdirAll(opts.HostKeyDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		address:            net.JoinHostPort(opts.Host, opts.Port),
		authorizedKeysPath: opts.AuthorizedKeysPath,
		newModel:           opts.NewModel,
	}

	// Middleware executes last to first
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(filepath.Join(opts.HostKeyDir, "id_ed25519")),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns host:port
func (s *Server) Address() string {
	return s.address
}

// Start serves until SIGINT or SIGTERM
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.address)
	fmt.Printf("SSH server listening on %s\n", s.address)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.wishServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Logger.Error("SSH server error", "error", err)
			return fmt.Errorf("SSH server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
