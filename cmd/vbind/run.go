package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vbind/internal/script"
	"github.com/vango-dev/vbind/pkg/render"
)

func runCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Bind a template, run a script, and print the result",
		Long: `Bind a template against a script's data and methods, run the
script's steps, and print the resulting HTML.

Examples:
  vbind run --template page.html --script counter.yaml
  vbind run -t page.html -s counter.yaml --pretty --metrics
  VBIND_LOG_LEVEL=debug vbind run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, *configPath)
		},
	}

	addBindFlags(cmd)
	cmd.Flags().Bool("pretty", false, "Indent the HTML output")
	cmd.Flags().Bool("strip-annotations", false, "Drop binding attributes from the output")
	cmd.Flags().Bool("metrics", false, "Print engine metrics after the HTML")

	return cmd
}

func runRun(cmd *cobra.Command, configPath string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd, configPath)
	if err != nil {
		return err
	}

	steps, err := script.NewRunner(s.engine, s.root, s.logger).Run(ctx, s.script)
	if err != nil {
		return err
	}
	s.logger.Info("script finished", "steps", steps)

	out := cmd.OutOrStdout()
	renderer := render.NewRenderer(render.RendererConfig{
		Pretty:           s.cfg.Render.Pretty,
		StripAnnotations: s.cfg.Render.StripAnnotations,
	})
	if err := renderer.RenderToWriter(out, s.root); err != nil {
		return err
	}
	if !s.cfg.Render.Pretty {
		fmt.Fprintln(out)
	}

	if s.registry != nil {
		fmt.Fprintln(out)
		return writeMetrics(out, s.registry)
	}
	return nil
}

// writeMetrics dumps the registry in the Prometheus text format.
func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
