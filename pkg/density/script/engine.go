// Package script provides a DensityProvider whose density field is a
// user-authored sandboxed Lisp expression, evaluated once per query box: a
// fresh sandbox per call, a hard timeout, and a generation counter so a
// caller retrying after a timeout never receives a stale result for a
// newer query.
package script

import (
	"fmt"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/cross3d/internal/logging"
	"github.com/chazu/cross3d/pkg/geom"
)

var log = logging.For("density/script")

// Provider evaluates Source against each query box's min/max/center/size,
// expecting the result to be a number in [0, 1].
type Provider struct {
	Source string

	mu         sync.Mutex
	generation uint64
}

// NewProvider returns a Provider that will evaluate source on every Density
// call.
func NewProvider(source string) *Provider {
	return &Provider{Source: source}
}

// Density implements the DensityProvider interface. A script that fails to
// parse, errors at runtime, or times out logs the failure and falls back to
// a density of 0: a missing density field should never halt tree
// construction.
func (p *Provider) Density(box geom.AABB3D) float64 {
	v, err := p.Eval(box)
	if err != nil {
		log.WithError(err).Warn("density script evaluation failed, using 0")
		return 0
	}
	return v
}

// Eval runs Source once against box and returns the resulting number.
func (p *Provider) Eval(box geom.AABB3D) (float64, error) {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during density script evaluation: %v", r)}
			}
		}()
		v, err := p.eval(box)
		ch <- evalResult{value: v, err: err}
	}()

	return waitWithTimeout(ch, gen, &p.mu, &p.generation)
}

func (p *Provider) eval(box geom.AABB3D) (float64, error) {
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, box)

	if err := env.LoadString(p.Source); err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}

	res, err := env.Run()
	if err != nil {
		return 0, fmt.Errorf("eval: %w", err)
	}

	return toFloat64(res)
}
