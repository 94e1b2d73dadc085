// Copyright 2025 Aurora QML Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main provides the Aurora CLI.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aurora-qml/aurora/adjoint"
	"github.com/aurora-qml/aurora/backend/cpu"
	"github.com/aurora-qml/aurora/backend/webgpu"
	"github.com/aurora-qml/aurora/circuit"
	"github.com/aurora-qml/aurora/observable"
)

const version = "v0.1.0-dev"

func main() {
	root := &cobra.Command{
		Use:   "aurora",
		Short: "Aurora - adjoint differentiation for quantum circuits in Go",
	}

	root.AddCommand(versionCmd(), gradCmd())

	if err := root.Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Aurora %s\n", version)
		},
	}
}

// gradCmd differentiates <PauliZ(1)> of an entangling two-qubit circuit
// with respect to the rotation angle and checks it against -sin(theta).
func gradCmd() *cobra.Command {
	var (
		theta   float64
		devices int
		useGPU  bool
	)
	cmd := &cobra.Command{
		Use:   "grad",
		Short: "Run a Jacobian demo circuit",
		RunE: func(cmd *cobra.Command, args []string) error {
			var kernel adjoint.Backend
			if useGPU {
				gpu, err := webgpu.New()
				if err != nil {
					return fmt.Errorf("gpu backend: %w", err)
				}
				defer gpu.Release()
				kernel = gpu
			} else {
				kernel = cpu.New()
			}
			log.Info("backend selected", "name", kernel.Name(), "devices", devices)

			tape := circuit.NewTape(
				circuit.Operation{Name: "RX", Params: []float64{theta}, Wires: []int{0}},
				circuit.Operation{Name: "CNOT", Wires: []int{0, 1}},
			)
			obs := []observable.Observable{observable.NewNamed("PauliZ", []int{1})}
			ref := []complex128{1, 0, 0, 0}

			engine := adjoint.New(kernel)
			jac := make([]float64, 1)

			pool, err := adjoint.NewPool(devices)
			if err != nil {
				return err
			}
			if err := engine.BatchedJacobian(cmd.Context(), jac, ref, obs, tape, []int{0}, true, pool); err != nil {
				return err
			}

			log.Info("jacobian computed",
				"theta", theta,
				"d<Z1>/dtheta", jac[0],
				"analytic", -math.Sin(theta))
			return nil
		},
	}
	cmd.Flags().Float64Var(&theta, "theta", math.Pi/4, "rotation angle")
	cmd.Flags().IntVar(&devices, "devices", 1, "devices in the pool")
	cmd.Flags().BoolVar(&useGPU, "gpu", false, "use the WebGPU backend")
	return cmd
}
