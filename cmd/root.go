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
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "isomesh",
	Short: "Structured mesh generation, isoparametric elements and quadrature tables",
	Long: `isomesh builds structured and transfinite quadrilateral grids, welds them into
conforming meshes, evaluates isoparametric element kernels over them and prints the
quadrature tables used to integrate them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		level := log.InfoLevel
		if viper.GetBool("verbose") {
			level = log.DebugLevel
		}
		logger := newLogger(cmd.ErrOrStderr(), level)
		cmd.SetContext(withLogger(cmd.Context(), logger))
		if cfg := viper.ConfigFileUsed(); cfg != "" {
			logger.Debug("using config file", "file", cfg)
		}
		switch mode := strings.ToLower(viper.GetString("profile")); mode {
		case "":
		case "cpu":
			stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop
		case "mem":
			stopProfile = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop
		default:
			err = fmt.Errorf("unknown profile mode %q, use cpu or mem", mode)
		}
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if stopProfile != nil {
			stopProfile()
			stopProfile = nil
		}
	},
}

var stopProfile func()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.isomesh.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("profile", "", "write a cpu or mem profile to the current directory")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".isomesh")
	}
	viper.SetEnvPrefix("isomesh")
	viper.AutomaticEnv()
	// A missing default config file is fine
	_ = viper.ReadInConfig()
}

type ctxKey int

const loggerKey ctxKey = 0

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFrom returns the command logger, or the package default before PersistentPreRun has run
func loggerFrom(cmd *cobra.Command) *log.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
