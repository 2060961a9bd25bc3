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
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/notargets/isomesh/utils"
	"github.com/spf13/cobra"
)

var exampleJob = `
########################################
Title: "Quarter tank"
Epsilon: 1.0e-8
Welder: hash
Output: tank.vtp
Blocks:
  - Type: quarterdisk
    Radius: 1.95
    NumNodes: 25
  - Type: grid
    OriginX: 0
    OriginY: 0
    Width: 1
    Height: 3
    NumX: 49
    NumY: 25
    Map:
      Type: cylinder
      Radius: 1.95
########################################
`

var unionCmd = &cobra.Command{
	Use:   "union",
	Short: "Generate the blocks of a mesh job and weld them into one mesh",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			logger  = loggerFrom(cmd)
			jobFile string
			output  string
		)
		jobFile, _ = cmd.Flags().GetString("inputConditionsFile")
		output, _ = cmd.Flags().GetString("output")
		if jobFile == "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Example File:%s\n", exampleJob)
			return errors.New("must supply a job file (-I, --inputConditionsFile)")
		}
		job, err := readJob(jobFile)
		if err != nil {
			return
		}
		if output != "" {
			job.Output = output
		}
		if job.Output == "" {
			return errors.New("job has no Output and no --output was given")
		}
		if logger.GetLevel() <= log.DebugLevel {
			job.Print()
		}
		start := time.Now()
		m, welds, err := buildJob(job, logger)
		if err != nil {
			return
		}
		logger.Info("welded blocks", "blocks", len(job.Blocks), "welds", welds,
			"nodes", m.NumNodes(), "elements", m.NumElements(), "elapsed", time.Since(start).Round(time.Millisecond))
		logger.Debug("memory", utils.MemUsage()...)
		if err = writeMesh(job.Output, job.OutputFormat(), m); err != nil {
			return
		}
		logger.Info("wrote mesh", "file", job.Output)
		return
	},
}

func init() {
	rootCmd.AddCommand(unionCmd)
	unionCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML mesh job file")
	unionCmd.Flags().StringP("output", "o", "", "output file, overrides the job Output")
}
