package script

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vango-dev/vbind"
	"github.com/vango-dev/vbind/pkg/reactive"
	"github.com/vango-dev/vbind/pkg/vdom"
	"github.com/vango-dev/vbind/pkg/view"
)

// Runner executes script steps against a bound engine.
type Runner struct {
	engine *vbind.Engine
	root   *vdom.VNode
	logger *slog.Logger
}

// NewRunner creates a runner. Step targets are looked up under root.
func NewRunner(engine *vbind.Engine, root *vdom.VNode, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{engine: engine, root: root, logger: logger}
}

// Run executes the steps in order and stops at the first failure.
// It returns the number of steps that completed.
func (r *Runner) Run(ctx context.Context, s *Script) (int, error) {
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		r.logger.Debug("script step", "index", i, "kind", step.Kind())
		if err := r.step(ctx, s, i, step); err != nil {
			return i, err
		}
	}
	return len(s.Steps), nil
}

func (r *Runner) step(ctx context.Context, s *Script, i int, step Step) error {
	switch step.Kind() {
	case "set":
		if err := r.engine.Set(step.Set.Field, step.Set.Value); err != nil {
			return s.stepError("S001", i, err).Wrap(err)
		}

	case "click":
		node, err := r.find(s, i, step.Click)
		if err != nil {
			return err
		}
		if err := r.engine.Dispatch(ctx, node, view.EventClick); err != nil {
			return s.stepError("S001", i, err).Wrap(err)
		}

	case "input":
		node, err := r.find(s, i, step.Input.Target)
		if err != nil {
			return err
		}
		if err := node.SetFacet(view.FacetValue, step.Input.Value); err != nil {
			return s.stepError("S001", i, err).Wrap(err)
		}
		if err := r.engine.Dispatch(ctx, node, view.EventInput); err != nil {
			return s.stepError("S001", i, err).Wrap(err)
		}

	case "expect":
		return r.expect(s, i, step.Expect)

	default:
		return s.stepError("S001", i, fmt.Errorf("empty step"))
	}
	return nil
}

func (r *Runner) find(s *Script, i int, selector string) (*vdom.VNode, error) {
	node := vdom.Query(r.root, selector)
	if node == nil {
		return nil, s.stepError("S003", i, fmt.Errorf("no node matches %q", selector))
	}
	return node, nil
}

func (r *Runner) expect(s *Script, i int, e *Expectation) error {
	if e.Field != "" {
		got, ok := r.engine.Get(e.Field)
		if !ok {
			return s.stepError("S002", i, fmt.Errorf("field %q does not exist", e.Field))
		}
		if !reactive.Equal(got, e.Value) {
			return s.stepError("S002", i, fmt.Errorf("field %q: expected %v, got %v", e.Field, e.Value, got))
		}
		return nil
	}

	node, err := r.find(s, i, e.Target)
	if err != nil {
		return err
	}
	if e.Text != nil {
		if got := node.TextContent(); got != *e.Text {
			return s.stepError("S002", i, fmt.Errorf("%s text: expected %q, got %q", e.Target, *e.Text, got))
		}
	}
	if e.Value != nil {
		if got := node.Facet(view.FacetValue); !reactive.Equal(got, e.Value) {
			return s.stepError("S002", i, fmt.Errorf("%s value: expected %v, got %v", e.Target, e.Value, got))
		}
	}
	if e.Visible != nil {
		want := view.Hidden
		if *e.Visible {
			want = view.Shown
		}
		if got := node.Visibility(); got != want {
			return s.stepError("S002", i, fmt.Errorf("%s visibility: expected %s, got %s", e.Target, want, got))
		}
	}
	return nil
}
