package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// readyCheckTimeout bounds how long a single readiness probe may take
const readyCheckTimeout = 2 * time.Second

// CheckFunc probes one dependency and returns an error when it is unreachable
type CheckFunc func(ctx context.Context) error

// PingInfo is the payload of the ping endpoint
type PingInfo struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	UptimeSec   int64     `json:"uptime_sec"`
	ServerTime  time.Time `json:"server_time"`
}

// Handler serves liveness and readiness endpoints. Liveness answers as long
// as the process runs; readiness also requires every registered dependency
// check to pass.
type Handler struct {
	serviceName string
	version     string
	hostname    string
	started     time.Time
	checkNames  []string
	checks      map[string]CheckFunc
}

// NewHandler creates a health handler for the named service
func NewHandler(serviceName, version string) *Handler {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return &Handler{
		serviceName: serviceName,
		version:     version,
		hostname:    hostname,
		started:     time.Now(),
		checks:      map[string]CheckFunc{},
	}
}

// AddCheck registers a named dependency probe for the readiness endpoint
func (h *Handler) AddCheck(name string, check CheckFunc) {
	if _, exists := h.checks[name]; !exists {
		h.checkNames = append(h.checkNames, name)
	}
	h.checks[name] = check
}

// Register mounts the health endpoints on the router
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/ping", h.Ping)
	e.GET("/health", h.Live)
	e.GET("/healthz", h.Live)
	e.GET("/ready", h.Ready)
}

// Ping returns service identity and uptime
func (h *Handler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, PingInfo{
		ServiceName: h.serviceName,
		Version:     h.version,
		GoVersion:   runtime.Version(),
		Hostname:    h.hostname,
		UptimeSec:   int64(time.Since(h.started).Seconds()),
		ServerTime:  time.Now(),
	})
}

// Live always reports OK while the process is running
func (h *Handler) Live(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready runs every registered dependency check and reports 503 with the
// failing dependencies when any of them is unreachable
func (h *Handler) Ready(c echo.Context) error {
	status := map[string]string{}
	healthy := true

	for _, name := range h.checkNames {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readyCheckTimeout)
		err := h.checks[name](ctx)
		cancel()

		if err != nil {
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]interface{}{
		"ready":        healthy,
		"dependencies": status,
	})
}
