package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/vango-dev/treepatch"
	"github.com/vango-dev/treepatch/internal/errors"
	"github.com/vango-dev/treepatch/internal/treefile"
	"github.com/vango-dev/treepatch/pkg/dom"
	"github.com/vango-dev/treepatch/pkg/modules"
	"github.com/vango-dev/treepatch/pkg/vdom"
)

func applyCmd() *cobra.Command {
	var (
		verbose bool
		html    bool
		stats   bool
		trace   bool
	)

	cmd := &cobra.Command{
		Use:   "apply FROM TO",
		Short: "Patch the tree in FROM to the tree in TO",
		Long: `Mount the tree described by FROM into an empty document, patch it to
the tree described by TO, and print the mutations of the second pass
followed by the resulting tree.

Examples:
  treepatch apply old.yaml new.yaml
  treepatch apply old.json new.json --html
  treepatch apply old.yaml new.yaml --stats --verbose
  treepatch apply old.yaml new.yaml --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("E040").WithDetail(fmt.Sprintf("apply takes 2 files, got %d", len(args)))
			}
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return runApply(cmd.OutOrStdout(), logger, args[0], args[1], applyOptions{
				html:  html,
				stats: stats,
				trace: trace,
			})
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log each pass")
	cmd.Flags().BoolVar(&html, "html", false, "Print the result as HTML instead of an outline")
	cmd.Flags().BoolVar(&stats, "stats", false, "Print reconciliation counters for the second pass")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print one OpenTelemetry span per pass as JSON")

	return cmd
}

type applyOptions struct {
	html  bool
	stats bool
	trace bool
}

func runApply(out io.Writer, logger *slog.Logger, fromPath, toPath string, opts applyOptions) error {
	from, err := treefile.Load(fromPath)
	if err != nil {
		return err
	}
	to, err := treefile.Load(toPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded", "from", fromPath, "from_nodes", countNodes(from), "to", toPath, "to_nodes", countNodes(to))

	reg := prometheus.NewRegistry()
	metrics := modules.NewMetrics(modules.WithRegistry(reg))
	extra := []vdom.Module{metrics.Module()}

	var spans bytes.Buffer
	if opts.trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(&spans), stdouttrace.WithoutTimestamps())
		if err != nil {
			return err
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Warn("tracer shutdown", "error", err)
			}
		}()
		extra = append(extra, modules.Tracing(modules.WithTracerProvider(tp)))
	}

	doc := dom.NewDocument(dom.WithMutationLog())
	eng, _ := treepatch.NewWithDocument(doc,
		vdom.WithLogger(logger.With("component", "vdom")),
		vdom.WithModules(extra...),
	)

	mount, err := doc.CreateElement("div")
	if err != nil {
		return err
	}
	if err := doc.AppendChild(doc.Body(), mount); err != nil {
		return err
	}
	cur, err := eng.PatchHandle(mount, from)
	if err != nil {
		return fmt.Errorf("mount %s: %w", fromPath, err)
	}
	logger.Info("mounted", "file", fromPath, "nodes", doc.Len())

	doc.ResetMutations()
	before := snapshot(reg)
	cur, err = eng.Patch(cur, to)
	if err != nil {
		return fmt.Errorf("patch to %s: %w", toPath, err)
	}

	muts := doc.Mutations()
	fmt.Fprintf(out, "%d mutations\n", len(muts))
	for _, m := range muts {
		fmt.Fprintf(out, "  %s\n", m)
	}
	fmt.Fprintln(out)

	if opts.stats {
		after := snapshot(reg)
		names := make([]string, 0, len(after))
		for name := range after {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %-45s %g\n", name, after[name]-before[name])
		}
		fmt.Fprintln(out)
	}

	if opts.html {
		fmt.Fprintln(out, doc.OuterHTML(cur.Elm))
	} else {
		fmt.Fprint(out, doc.Outline(cur.Elm))
	}

	if opts.trace {
		fmt.Fprintln(out)
		_, _ = spans.WriteTo(out)
	}
	return nil
}

// countNodes returns the number of nodes in the description rooted at v.
func countNodes(v *vdom.VNode) int {
	n := 0
	vdom.Walk(v, func(*vdom.VNode) bool {
		n++
		return true
	})
	return n
}

// snapshot reads the current value of every counter in reg.
func snapshot(reg *prometheus.Registry) map[string]float64 {
	values := make(map[string]float64)
	families, err := reg.Gather()
	if err != nil {
		return values
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				values[mf.GetName()] += c.GetValue()
			}
		}
	}
	return values
}
