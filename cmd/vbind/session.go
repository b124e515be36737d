package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vbind"
	"github.com/vango-dev/vbind/internal/config"
	vberrors "github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/internal/script"
	"github.com/vango-dev/vbind/pkg/vdom"
)

// session is a template bound against a script's data and methods.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	root     *vdom.VNode
	script   *script.Script
	engine   *vbind.Engine
	registry *prometheus.Registry
}

// addBindFlags registers the flags shared by commands that bind a template.
func addBindFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("template", "t", "", "HTML template to bind")
	cmd.Flags().StringP("script", "s", "", "YAML script with data, methods and steps")
	cmd.Flags().String("root", config.DefaultRoot, "Selector of the node to bind")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
}

// openSession loads configuration, the template and the script, and binds.
func openSession(ctx context.Context, cmd *cobra.Command, configPath string) (*session, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &session{
		cfg: cfg,
		logger: slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: cfg.LogLevel(),
		})),
	}

	doc, err := loadTemplate(cfg.TemplatePath())
	if err != nil {
		return nil, err
	}
	s.root = vdom.Query(doc, cfg.Root)
	if s.root == nil {
		return nil, vberrors.New("B004").
			WithDetail(fmt.Sprintf("No node in %s matches root selector %q", cfg.TemplatePath(), cfg.Root))
	}

	s.script = &script.Script{}
	if path := cfg.ScriptPath(); path != "" {
		if s.script, err = script.ParseFile(path); err != nil {
			return nil, err
		}
	}

	var metrics *vbind.Metrics
	if cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		metrics = vbind.NewMetrics(
			vbind.WithRegistry(s.registry),
			vbind.WithNamespace(cfg.Metrics.Namespace),
		)
	}

	data := s.script.Data
	if data == nil {
		data = map[string]any{}
	}
	s.engine, err = vbind.New(ctx, vbind.Config{
		Root:    s.root,
		Data:    data,
		Methods: s.script.BuildMethods(),
		Logger:  s.logger,
		Metrics: metrics,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func loadTemplate(path string) (*vdom.VNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, vberrors.New("T001").Wrap(err).
			WithDetail("Failed to open template " + path)
	}
	defer f.Close()

	doc, err := vdom.ParseHTML(f)
	if err != nil {
		return nil, vberrors.New("T001").Wrap(err)
	}
	return doc, nil
}
