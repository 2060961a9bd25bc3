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
	"github.com/notargets/isomesh/mesh/creators"
	"github.com/spf13/cobra"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Write a structured rectangular grid",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			logger = loggerFrom(cmd)
			flags  = cmd.Flags()
		)
		x, _ := flags.GetFloat64("x")
		y, _ := flags.GetFloat64("y")
		width, _ := flags.GetFloat64("width")
		height, _ := flags.GetFloat64("height")
		nx, _ := flags.GetInt("nx")
		ny, _ := flags.GetInt("ny")
		output, _ := flags.GetString("output")
		format, _ := flags.GetString("format")
		m, err := creators.NewPlaneGrid(x, y, width, height, nx, ny).Create()
		if err != nil {
			return
		}
		if err = writeMesh(output, format, m); err != nil {
			return
		}
		logger.Info("wrote grid", "file", output, "nodes", m.NumNodes(), "elements", m.NumElements())
		return
	},
}

func init() {
	rootCmd.AddCommand(gridCmd)
	gridCmd.Flags().Float64("x", 0, "x of the lower left corner")
	gridCmd.Flags().Float64("y", 0, "y of the lower left corner")
	gridCmd.Flags().Float64("width", 1, "extent along x")
	gridCmd.Flags().Float64("height", 1, "extent along y")
	gridCmd.Flags().Int("nx", 11, "number of nodes along x")
	gridCmd.Flags().Int("ny", 11, "number of nodes along y")
	gridCmd.Flags().StringP("output", "o", "grid.txt", "output file")
	gridCmd.Flags().String("format", "txt", "output format, txt or vtp")
}
