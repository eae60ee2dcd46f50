// Package api serves the graycalc browser page and its JSON conversion endpoint.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/papercomputeco/graycalc/pkg/convert"
)

const requestIDKey = "request_id"

// Server is the HTTP front-end for the converter. It holds no per-request
// state, so requests are served concurrently without coordination.
type Server struct {
	config Config
	logger *zap.Logger
	assets *assets
	app    *fiber.App
}

// New creates a new Server.
func New(config Config, logger *zap.Logger) (*Server, error) {
	a, err := newAssets(config.AssetsDir, logger)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
	})

	s := &Server{
		config: config,
		logger: logger,
		assets: a,
		app:    app,
	}

	app.Use(fiberrecover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(s.accessLog)

	// Page and static assets
	static := adaptor.HTTPHandler(http.FileServer(http.FS(a.fsys)))
	app.Get("/", s.handleIndex)
	app.Get("/style.css", static)
	app.Get("/script.js", static)

	// Conversion API
	app.Post("/convert", s.handleConvert)
	app.Get("/kinds", s.handleKinds)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	return s, nil
}

// Run starts the server on the configured listening address.
func (s *Server) Run() error {
	s.logger.Info("starting graycalc server", zap.String("listen", s.config.ListenAddr))
	return s.app.Listen(s.config.ListenAddr)
}

// RunWithListener serves on an existing listener.
func (s *Server) RunWithListener(ln net.Listener) error {
	s.logger.Info("starting graycalc server", zap.String("listen", ln.Addr().String()))
	return s.app.Listener(ln)
}

// Shutdown gracefully stops serving.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Close releases the asset watcher.
func (s *Server) Close() error {
	return s.assets.Close()
}

// accessLog logs one line per request once the handler chain has finished.
func (s *Server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	id, _ := c.Locals(requestIDKey).(string)
	s.logger.Info("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", id),
	)
	return err
}

// handleIndex renders the converter page.
func (s *Server) handleIndex(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := s.assets.renderIndex(&buf); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(convert.ErrorResponse{Error: "internal error"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// handleConvert runs a single conversion. Every validation failure is a 400
// with the user-facing message in the error field.
func (s *Server) handleConvert(c *fiber.Ctx) error {
	var req convert.Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		s.logger.Warn("failed to parse request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(convert.ErrorResponse{Error: "invalid request body"})
	}

	res, err := convert.Convert(req)
	if err != nil {
		s.logger.Debug("conversion rejected",
			zap.String("type", req.Kind.String()),
			zap.String("value", truncate(req.Value, 64)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadRequest).JSON(convert.ErrorResponse{Error: err.Error()})
	}

	s.logger.Debug("conversion complete",
		zap.String("type", req.Kind.String()),
		zap.String("value", truncate(req.Value, 64)),
		zap.String("result", truncate(res.Value, 64)),
		zap.Int("steps", len(res.Steps)),
	)

	return c.JSON(res)
}

// handleKinds lists the supported conversions with their input hints.
func (s *Server) handleKinds(c *fiber.Ctx) error {
	return c.JSON(map[string]any{
		"kinds": convert.Kinds(),
	})
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
