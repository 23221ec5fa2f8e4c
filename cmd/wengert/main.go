// Package main provides the Wengert autodiff engine CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wengert-ml/wengert/backend/cpu"
	"github.com/wengert-ml/wengert/backend/webgpu"
	"github.com/wengert-ml/wengert/graph"
	"github.com/wengert-ml/wengert/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Wengert %s\n", version)
			return
		case "demo":
			if err := runDemo(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "demo: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Wengert - Reverse-Mode Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate a small expression (-device cpu|webgpu)")
}

// runDemo builds z = expm(x).Mul(x.Add(y)), evaluates it and prints the
// value of z and the accumulated gradient of x.
func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	device := fs.String("device", "cpu", "compute device (cpu or webgpu)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var backend tensor.Backend
	switch *device {
	case "cpu":
		backend = cpu.New()
	case "webgpu":
		gpu, err := webgpu.New()
		if err != nil {
			return err
		}
		defer gpu.Release()
		backend = gpu
	default:
		return fmt.Errorf("unknown device %q", *device)
	}
	fmt.Printf("backend: %s\n", backend.Name())

	rawX, err := tensor.FromSlice([]float32{0.5, 0, 0, 1.5}, tensor.Shape{2, 2})
	if err != nil {
		return err
	}
	rawY, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	if err != nil {
		return err
	}

	g := graph.New(backend)
	x := g.Leaf(rawX)
	y := g.Leaf(rawY)
	z := x.ExpM().Mul(x.Add(y))

	if err := z.Forward(); err != nil {
		return err
	}
	if err := z.Backward(nil); err != nil {
		return err
	}

	value, err := z.Value()
	if err != nil {
		return err
	}
	grad, err := x.Grad()
	if err != nil {
		return err
	}

	fmt.Printf("z      = %v %v\n", value.Shape(), value.AsFloat32())
	fmt.Printf("dz/dx  = %v %v\n", grad.Shape(), grad.AsFloat32())
	return nil
}
