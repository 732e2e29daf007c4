// Package main provides the Flint kernel generator CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/flint-ml/flint/cl"
	"github.com/flint-ml/flint/device"
	"github.com/flint-ml/flint/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Flint %s\n", version)
			return
		case "kernel":
			if err := runKernel(os.Args[2:]); err != nil {
				fmt.Fprintln(os.Stderr, "flint:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Flint - OpenCL kernel generation for mobile GPU inference")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  kernel     Print the generated mean kernel for a device")
	fmt.Println("  version    Show version")
}

func runKernel(args []string) error {
	fs := flag.NewFlagSet("kernel", flag.ExitOnError)
	devName := fs.String("device", "", `OpenCL device name, e.g. "Adreno (TM) 640"`)
	precName := fs.String("precision", "f32", "calculation precision: f32 or f16")
	batch := fs.Bool("batch", true, "tensors carry an explicit batch axis")
	height := fs.Int("height", 0, "runtime source height; with -width, also prints launch parameters")
	width := fs.Int("width", 0, "runtime source width")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var prec cl.Precision
	switch *precName {
	case "f32":
		prec = cl.PrecisionF32
	case "f16":
		prec = cl.PrecisionF16
	default:
		return fmt.Errorf("unknown precision %q", *precName)
	}

	layout := tensor.LayoutBHWC
	if !*batch {
		layout = tensor.LayoutHWC
	}
	dtype := tensor.Float32
	if prec == cl.PrecisionF16 {
		dtype = tensor.Float16
	}
	def := cl.OperationDef{
		Precision: prec,
		Src:       []tensor.Descriptor{{DataType: dtype, Layout: layout}},
		Dst:       []tensor.Descriptor{{DataType: dtype, Layout: layout}},
	}

	dev := device.FromName(*devName)
	m := cl.NewMean(def, dev)

	fmt.Printf("// device: %s (%s)\n", dev.Name, dev.Vendor)
	fmt.Printf("// work group: %v\n", m.WorkGroupSize())
	fmt.Print(m.Code())

	if *height > 0 && *width > 0 {
		shape := tensor.Shape{B: 1, H: *height, W: *width, C: 4}
		m.SetSrcShape(shape)
		m.SetDstShape(tensor.Shape{B: 1, H: 1, W: 1, C: 4})
		if err := m.BindArguments(m.Args()); err != nil {
			return err
		}
		inv1, _ := m.Args().Float("inv_multiplier_1")
		inv2, _ := m.Args().Float("inv_multiplier_2")
		fmt.Printf("// inv_multiplier_1 = %g\n", inv1)
		fmt.Printf("// inv_multiplier_2 = %g\n", inv2)
		fmt.Printf("// grid = %v\n", m.GridSize())
	}
	return nil
}
