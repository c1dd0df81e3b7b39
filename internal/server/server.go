// Package server exposes the preview engine over HTTP for the shop front
// end: catalog lookup, scene summaries and rendered PNG previews.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/model"
	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/snapshot"
)

// SessionHeader carries the request id
const SessionHeader = "X-Session-ID"

const maxImageSide = 4096

// Options configures the server
type Options struct {
	Address string
	Catalog *product.Catalog
	// Width and Height are the default preview size
	Width  int
	Height int
}

// Server renders previews for configurations posted by clients
type Server struct {
	log     *slog.Logger
	opts    Options
	builder *model.Builder
	router  *gin.Engine
}

// New creates a server. A nil catalog uses the default catalog.
func New(log *slog.Logger, opts Options) *Server {
	if log == nil {
		log = slog.Default()
	}
	if opts.Catalog == nil {
		opts.Catalog = product.DefaultCatalog()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 800, 600
	}

	s := &Server{
		log:     log,
		opts:    opts,
		builder: model.NewBuilder(log, opts.Catalog),
	}
	s.setupGin()
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("preview server listening", "address", s.opts.Address)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}

func (s *Server) setupGin() {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(s.requestID, s.logRequest, gin.CustomRecovery(s.recover))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/catalog", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.opts.Catalog)
	})
	router.POST("/scene", s.scene)
	router.POST("/preview.png", s.preview)

	s.router = router
}

func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader(SessionHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	c.Set("session", id)
	c.Header(SessionHeader, id)
	c.Next()
}

func (s *Server) logRequest(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.log.Debug("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"session", c.GetString("session"),
		"duration", time.Since(start),
	)
}

func (s *Server) recover(c *gin.Context, recovered any) {
	s.log.Error("handler panic", "panic", recovered, "session", c.GetString("session"))
	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetTag("session", c.GetString("session"))
	hub.Recover(recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// configuration decodes the JSON body on top of the default configuration
// and validates it against the catalog
func (s *Server) configuration(c *gin.Context) (product.Configuration, bool) {
	cfg, err := product.DecodeConfiguration(c.Request.Body, product.FormatJSON)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return cfg, false
	}
	if err := cfg.Validate(s.opts.Catalog); err != nil {
		s.abortConfiguration(c, err)
		return cfg, false
	}
	return cfg, true
}

func (s *Server) abortConfiguration(c *gin.Context, err error) {
	var cerr *product.ConfigurationError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  cerr.Error(),
			"field":  cerr.Field,
			"reason": cerr.Reason,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *Server) scene(c *gin.Context) {
	cfg, ok := s.configuration(c)
	if !ok {
		return
	}
	g, err := s.builder.Build(cfg)
	if err != nil {
		s.abortConfiguration(c, err)
		return
	}
	defer g.Release()

	c.JSON(http.StatusOK, gin.H{
		"session": c.GetString("session"),
		"variant": cfg.Variant().String(),
		"scene":   g.Summarize(),
	})
}

func (s *Server) preview(c *gin.Context) {
	opts := snapshot.DefaultOptions()
	opts.Logger = s.log
	opts.Catalog = s.opts.Catalog
	opts.Width, opts.Height = s.opts.Width, s.opts.Height

	if err := previewQuery(c, &opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, ok := s.configuration(c)
	if !ok {
		return
	}

	img, err := snapshot.Still(cfg, opts)
	if err != nil {
		s.abortConfiguration(c, err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// previewQuery reads width, height, open, view, pitch and yaw
func previewQuery(c *gin.Context, opts *snapshot.Options) error {
	for name, dst := range map[string]*int{"width": &opts.Width, "height": &opts.Height} {
		if v := c.Query(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > maxImageSide {
				return fmt.Errorf("invalid %s %q", name, v)
			}
			*dst = n
		}
	}
	for name, dst := range map[string]*float64{"pitch": &opts.Pitch, "yaw": &opts.Yaw} {
		if v := c.Query(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("invalid %s %q", name, v)
			}
			*dst = f
		}
	}
	if v := c.Query("open"); v != "" {
		open, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid open %q", v)
		}
		opts.Open = open
	}
	switch c.Query("view") {
	case "", "front":
		opts.View = camera.Front
	case "back":
		opts.View = camera.Back
	default:
		return fmt.Errorf("invalid view %q", c.Query("view"))
	}
	return nil
}
