package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/macreserve/internal/client/client"
	"github.com/dmitrijs2005/macreserve/internal/client/config"
	"github.com/dmitrijs2005/macreserve/internal/client/services"
	"github.com/dmitrijs2005/macreserve/internal/logging"
	"github.com/dmitrijs2005/macreserve/internal/models"
	"github.com/dmitrijs2005/macreserve/internal/reservations"
)

type Mode string

const (
	ModeLocal   Mode = "local"
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	service services.ReservationService
	logger  logging.Logger
	user    models.User
	reader  *bufio.Reader
	out     io.Writer

	modeMu sync.RWMutex
	mode   Mode
}

func NewApp(c *config.Config) (*App, error) {

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, level, false)

	var (
		service services.ReservationService
		mode    Mode
	)

	switch c.Mode {
	case config.ModeRemote:
		apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
		if err != nil {
			return nil, err
		}
		service = services.NewRemoteService(apiClient)
		mode = ModeOnline
	default:
		service = services.NewLocalService(reservations.NewSystem(logger))
		mode = ModeLocal
	}

	app := newApp(c, service, logger, os.Stdin, os.Stdout)
	app.mode = mode
	return app, nil
}

func newApp(c *config.Config, service services.ReservationService, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		service: service,
		logger:  logger.With("module", "cli"),
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.logger.Warn(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.service.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user.Username != ""
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode between online and offline until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.service.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
