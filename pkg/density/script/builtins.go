package script

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/cross3d/pkg/geom"
)

// registerBuiltins installs the query box's geometry into env as zero-arg
// functions, so a density script can write (vec3-z (center)) or (vec3-x (min))
// rather than receiving the box as an opaque argument.
func registerBuiltins(env *zygo.Zlisp, box geom.AABB3D) {
	center := geom.Point3{
		X: (box.Min.X + box.Max.X) / 2,
		Y: (box.Min.Y + box.Max.Y) / 2,
		Z: (box.Min.Z + box.Max.Z) / 2,
	}
	size := box.Size()

	registerVec3 := func(fname string, v geom.Point3) {
		env.AddFunction(fname, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			return &zygo.SexpArray{Val: []zygo.Sexp{
				&zygo.SexpFloat{Val: geom.IntToMM(v.X)},
				&zygo.SexpFloat{Val: geom.IntToMM(v.Y)},
				&zygo.SexpFloat{Val: geom.IntToMM(v.Z)},
			}}, nil
		})
	}
	registerVec3("min", box.Min)
	registerVec3("max", box.Max)
	registerVec3("center", center)
	registerVec3("size", size)

	env.AddFunction("vec3-x", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return vec3Component(args, 0)
	})
	env.AddFunction("vec3-y", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return vec3Component(args, 1)
	})
	env.AddFunction("vec3-z", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return vec3Component(args, 2)
	})
}

func vec3Component(args []zygo.Sexp, i int) (zygo.Sexp, error) {
	if len(args) != 1 {
		return zygo.SexpNull, fmt.Errorf("vec3-component: expected 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*zygo.SexpArray)
	if !ok || len(arr.Val) != 3 {
		return zygo.SexpNull, fmt.Errorf("vec3-component: expected a 3-element vec3, got %T", args[0])
	}
	return arr.Val[i], nil
}

// toFloat64 extracts a float64 from a density script's result Sexp.
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number result, got %T", s)
}
