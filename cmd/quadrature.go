/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/notargets/isomesh/quadrature"
	"github.com/spf13/cobra"
)

var quadratureCmd = &cobra.Command{
	Use:   "quadrature",
	Short: "Print the quadrature table of a reference shape",
	Long: `Print points and weights of the quadrature rule for a reference shape, followed by
the weight sum and the first moment of the parametric coordinates.
Shapes: interval, triangle, tetrahedron, quadrilateral, hexahedron.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			shape quadrature.Shape
			rule  quadrature.Rule
		)
		name, _ := cmd.Flags().GetString("shape")
		order, _ := cmd.Flags().GetInt("order")
		if shape, err = quadrature.ParseShape(name); err != nil {
			return
		}
		if rule, err = quadrature.New(shape, order); err != nil {
			return
		}
		if rule.Order() != order {
			loggerFrom(cmd).Warn("order is outside the tabulated range", "shape", shape, "requested", order, "used", rule.Order())
		}
		printRule(cmd.OutOrStdout(), shape, rule)
		return
	},
}

func init() {
	rootCmd.AddCommand(quadratureCmd)
	quadratureCmd.Flags().StringP("shape", "s", "interval", "reference shape")
	quadratureCmd.Flags().IntP("order", "n", 2, "rule order")
}

func printRule(w io.Writer, shape quadrature.Shape, rule quadrature.Rule) {
	var (
		coords = []string{"xi", "eta", "mu"}
		points = rule.Points()
	)
	fmt.Fprintf(w, "%s order %d, %d points\n", shape, rule.Order(), len(points))
	for i := 0; i < shape.Dim(); i++ {
		fmt.Fprintf(w, "%22s", coords[i])
	}
	fmt.Fprintf(w, "%22s\n", "weight")
	for _, p := range points {
		for _, c := range p.Coords() {
			fmt.Fprintf(w, "%22.15f", c)
		}
		fmt.Fprintf(w, "%22.15f\n", p.Weight())
	}
	sum := quadrature.Integrate(rule, func(quadrature.Point) float64 { return 1 })
	moment := quadrature.Integrate(rule, func(p quadrature.Point) float64 { return p.Xi() + p.Eta() + p.Mu() })
	fmt.Fprintf(w, "sum of weights %.15g (measure %.15g)\n", sum, quadrature.Measure(shape))
	fmt.Fprintf(w, "first moment   %.15g\n", moment)
}
