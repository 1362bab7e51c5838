// Command crossdemo builds a Cross3D tree from a config file (or built-in
// defaults), runs the minimal-density subdivision policy, extracts the
// bottom slice, and writes an SVG preview — a thin driver over pkg/cross3d,
// exercising the same construction path a slicer's infill stage would.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/chazu/cross3d/internal/config"
	"github.com/chazu/cross3d/internal/logging"
	"github.com/chazu/cross3d/pkg/cross3d"
	"github.com/chazu/cross3d/pkg/debugsvg"
	"github.com/chazu/cross3d/pkg/density"
	"github.com/chazu/cross3d/pkg/density/script"
	"github.com/chazu/cross3d/pkg/geom"
	"github.com/chazu/cross3d/pkg/kernel"
	"github.com/chazu/cross3d/pkg/kernel/manifold"
	"github.com/chazu/cross3d/pkg/kernel/sdfx"
	"github.com/chazu/cross3d/pkg/meshexport"
	"github.com/chazu/cross3d/pkg/meshio"
	"github.com/sirupsen/logrus"
)

var log = logging.For("crossdemo")

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (defaults used if empty)")
	outSVG := flag.String("svg", "cross3d.svg", "path to write the tree preview SVG")
	outMesh := flag.String("mesh", "", "path to write a coarse kernel-backed preview mesh as JSON (skipped if empty)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logging.SetLevel(logrus.DebugLevel)
	}

	if err := run(*configPath, *outSVG, *outMesh); err != nil {
		log.WithError(err).Error("crossdemo failed")
		os.Exit(1)
	}
}

func run(configPath, outSVG, outMesh string) error {
	cfg := config.New()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg = config.LoadEnv(cfg)

	provider, err := buildDensityProvider(cfg)
	if err != nil {
		return fmt.Errorf("crossdemo: density provider: %w", err)
	}

	tree, err := cross3d.New(cfg.AABB.ToAABB3D(), cfg.MaxDepth, geom.Coord(cfg.LineWidth), provider)
	if err != nil {
		return fmt.Errorf("crossdemo: build tree: %w", err)
	}

	if err := tree.CreateMinimalDensityPattern(); err != nil {
		return fmt.Errorf("crossdemo: density policy: %w", err)
	}

	findings := cross3d.CheckInvariants(tree)
	for _, f := range findings {
		log.Warn(f.Error())
	}

	walker := tree.GetBottomSequence()
	log.WithField("cells", len(walker.Sequence())).Info("extracted bottom slice sequence")

	f, err := os.Create(outSVG)
	if err != nil {
		return fmt.Errorf("crossdemo: create %s: %w", outSVG, err)
	}
	defer f.Close()

	opt := debugsvg.DefaultOptions(cfg.AABB.ToAABB3D())
	debugsvg.RenderSequence(f, tree, walker.Sequence(), opt)

	log.WithField("path", outSVG).Info("wrote slice preview")

	if outMesh != "" {
		if err := writePreviewMesh(tree, cfg, outMesh); err != nil {
			return fmt.Errorf("crossdemo: preview mesh: %w", err)
		}
		log.WithField("path", outMesh).Info("wrote preview mesh")
	}

	return nil
}

// buildKernel returns the pkg/kernel.Kernel implementation named by
// backend, defaulting to the always-available sdfx backend.
func buildKernel(backend string) (kernel.Kernel, error) {
	switch backend {
	case "", "sdfx":
		return sdfx.New(), nil
	case "manifold":
		return manifold.New()
	default:
		return nil, fmt.Errorf("crossdemo: unknown kernel backend %q", backend)
	}
}

// writePreviewMesh builds a coarse bounding-box preview of tree through the
// configured kernel backend and writes it to path as JSON.
func writePreviewMesh(tree *cross3d.Tree, cfg config.Config, path string) error {
	k, err := buildKernel(cfg.KernelBackend)
	if err != nil {
		return err
	}
	mesh, err := meshexport.Preview(tree, k)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(mesh)
}

// sdfBoxSolid builds a box solid, through the sdfx kernel backend, matching
// cfg's bounding box, and returns it as a kernel.Solid. Only the sdfx
// backend can currently produce one, since density.SDFProximity is typed
// directly against github.com/deadsy/sdfx's SDF3 rather than the opaque
// kernel.Solid, and sdfx.Unwrap is the only bridge between the two.
func sdfBoxSolid(cfg config.Config) (kernel.Solid, error) {
	backend := cfg.KernelBackend
	if backend == "" {
		backend = "sdfx"
	}
	if backend != "sdfx" {
		return nil, fmt.Errorf("sdf_proximity density requires the sdfx kernel backend, got %q", backend)
	}
	k := sdfx.New()

	aabb := cfg.AABB.ToAABB3D()
	size := aabb.Size()
	box := k.Box(geom.IntToMM(size.X), geom.IntToMM(size.Y), geom.IntToMM(size.Z))
	box = k.Translate(box, geom.IntToMM(aabb.Min.X), geom.IntToMM(aabb.Min.Y), geom.IntToMM(aabb.Min.Z))
	return box, nil
}

func buildDensityProvider(cfg config.Config) (cross3d.DensityProvider, error) {
	d := cfg.Density
	switch d.Kind {
	case config.DensityConstant, "":
		return density.Constant(d.ConstantValue), nil
	case config.DensityMesh:
		mesh, err := meshio.Load(d.MeshPath)
		if err != nil {
			return nil, err
		}
		p := meshio.NewMeshProximity(mesh, d.FalloffDistance)
		p.MinDensity, p.MaxDensity = d.MinDensity, d.MaxDensity
		return p, nil
	case config.DensityScript:
		return script.NewProvider(d.ScriptSource), nil
	case config.DensitySDF:
		solid, err := sdfBoxSolid(cfg)
		if err != nil {
			return nil, fmt.Errorf("crossdemo: sdf_proximity density: %w", err)
		}
		p := density.NewSDFProximity(sdfx.Unwrap(solid), d.FalloffDistance)
		p.MinDensity, p.MaxDensity = d.MinDensity, d.MaxDensity
		return p, nil
	default:
		return nil, fmt.Errorf("crossdemo: unknown density kind %q", d.Kind)
	}
}
