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
	"math"

	"github.com/notargets/isomesh/mesh/creators"
	"github.com/spf13/cobra"
)

var transfiniteCmd = &cobra.Command{
	Use:   "transfinite",
	Short: "Write a transfinite grid of an annular sector",
	Long: `Write a transfinite grid between the radii inner and outer spanning the angles
from and to, given in degrees. Rows run along the radius, columns along the arc.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			logger = loggerFrom(cmd)
			flags  = cmd.Flags()
		)
		inner, _ := flags.GetFloat64("inner")
		outer, _ := flags.GetFloat64("outer")
		from, _ := flags.GetFloat64("from")
		to, _ := flags.GetFloat64("to")
		nx, _ := flags.GetInt("nx")
		ny, _ := flags.GetInt("ny")
		output, _ := flags.GetString("output")
		format, _ := flags.GetString("format")
		m, err := creators.AnnulusSector(inner, outer, from*math.Pi/180, to*math.Pi/180, nx, ny).Create()
		if err != nil {
			return
		}
		if err = writeMesh(output, format, m); err != nil {
			return
		}
		logger.Info("wrote transfinite grid", "file", output, "nodes", m.NumNodes(), "elements", m.NumElements())
		return
	},
}

func init() {
	rootCmd.AddCommand(transfiniteCmd)
	transfiniteCmd.Flags().Float64("inner", 0.5, "inner radius")
	transfiniteCmd.Flags().Float64("outer", 1, "outer radius")
	transfiniteCmd.Flags().Float64("from", 0, "start angle in degrees")
	transfiniteCmd.Flags().Float64("to", 45, "end angle in degrees")
	transfiniteCmd.Flags().Int("nx", 25, "number of nodes along the radius")
	transfiniteCmd.Flags().Int("ny", 25, "number of nodes along the arc")
	transfiniteCmd.Flags().StringP("output", "o", "transfinite.txt", "output file")
	transfiniteCmd.Flags().String("format", "txt", "output format, txt or vtp")
}
