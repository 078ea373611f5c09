package demo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/arthur-debert/sigslot/pkg/errors"
	"github.com/arthur-debert/sigslot/pkg/logging"
	"github.com/arthur-debert/sigslot/pkg/registry"
	"github.com/rs/zerolog"
)

// Env is what a scenario runs with
type Env struct {
	// Args feeds the signals of scenarios taking an int; empty means {3}
	Args   []int
	Logger zerolog.Logger
}

// Step records one observable action of a scenario
type Step struct {
	Action  string
	Outcome string
	// Slots is the number of connected handlers after the action
	Slots int
}

// Result is the trace of one scenario run
type Result struct {
	Scenario string
	Steps    []Step
}

func (r *Result) record(action string, outcome interface{}, slots int) {
	r.Steps = append(r.Steps, Step{
		Action:  action,
		Outcome: fmt.Sprint(outcome),
		Slots:   slots,
	})
}

// Scenario is one runnable demonstration
type Scenario struct {
	Name        string
	Description string
	Run         func(ctx context.Context, env Env) (*Result, error)
}

var catalog = registry.New[Scenario]()

// Catalog returns the registered scenarios
func Catalog() registry.Registry[Scenario] {
	return catalog
}

func register(s Scenario) {
	registry.MustRegister(catalog, s.Name, s)
}

// Run runs the named scenario
func Run(ctx context.Context, name string, env Env) (*Result, error) {
	s, err := catalog.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrNotFound, "unknown scenario %q", name).
			WithDetail("known", catalog.List())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(env.Args) == 0 {
		env.Args = []int{3}
	}

	done := logging.LogOperationStart(env.Logger, "scenario "+name)
	defer done()

	return s.Run(ctx, env)
}

// RunAll runs the named scenarios in order, or every scenario if names is
// empty. It stops at the first failure and returns the results so far.
func RunAll(ctx context.Context, names []string, env Env) ([]*Result, error) {
	if len(names) == 0 {
		names = catalog.List()
	}

	results := make([]*Result, 0, len(names))
	for _, name := range names {
		res, err := Run(ctx, name, env)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// expect fails the scenario when got differs from want
func expect(scenario, what string, want, got interface{}) error {
	if reflect.DeepEqual(want, got) {
		return nil
	}
	return errors.Newf(errors.ErrScenarioFailed, "%s: %s: want %v, got %v", scenario, what, want, got).
		WithDetail("scenario", scenario)
}
