// Copyright ©2026 The bíogo Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// ordbench times an unbalanced binary search tree against balanced ordered
// sets, elementary sorts against each other, and a two pass counting sort
// against a comparison sort on card dump records.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/biogo/ordbench/internal/bench"
	"github.com/biogo/ordbench/internal/config"
	"github.com/biogo/ordbench/internal/logging"
)

var (
	configPath string
	outputDir  string
	quiet      bool
)

// setup loads the configuration, applies flags that were set on cmd and starts logging.
func setup(cmd *cobra.Command, apply func(*config.Config)) (*config.Config, io.Writer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = outputDir
	}
	if quiet {
		cfg.Progress = false
	}
	if apply != nil {
		apply(cfg)
	}
	err = cfg.Validate()
	if err != nil {
		return nil, nil, err
	}
	err = logging.Up(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	err = os.MkdirAll(cfg.OutputDir, 0755)
	if err != nil {
		return nil, nil, err
	}
	var prog io.Writer
	if cfg.Progress {
		prog = os.Stderr
	}
	return cfg, prog, nil
}

func treeCmd() *cobra.Command {
	var (
		size int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Time insertion and removal in the unbalanced tree and reference ordered sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, prog, err := setup(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("size") {
					cfg.Tree.Size = size
				}
				if cmd.Flags().Changed("seed") {
					cfg.Tree.Seed = seed
				}
			})
			if err != nil {
				return err
			}
			defer logging.Down()
			rep, err := bench.RunTree(cfg.Tree, cfg.OutputDir, prog)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "heights for %d keys: random=%d balanced=%d sorted=%d\n",
				rep.Size, rep.RandomHeight, rep.BalancedHeight, rep.SortedHeight)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "number of keys")
	cmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed")
	return cmd
}

func sortCmd() *cobra.Command {
	var (
		sizes []int
		runs  int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Time bubble, insertion, merge and quick sort over a range of input sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, prog, err := setup(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("sizes") {
					cfg.Sort.Sizes = sizes
				}
				if cmd.Flags().Changed("runs") {
					cfg.Sort.Runs = runs
				}
				if cmd.Flags().Changed("seed") {
					cfg.Sort.Seed = seed
				}
			})
			if err != nil {
				return err
			}
			defer logging.Down()
			_, err = bench.RunSorts(cfg.Sort, cfg.OutputDir, prog)
			return err
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "input sizes")
	cmd.Flags().IntVar(&runs, "runs", 0, "runs averaged per size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "input generation seed")
	return cmd
}

func cardsCmd() *cobra.Command {
	var masked, detail string
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Sort card dump records by expiry and PIN with a comparison sort and a counting sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("masked") {
					cfg.Cards.MaskedPath = masked
				}
				if cmd.Flags().Changed("detail") {
					cfg.Cards.DetailPath = detail
				}
			})
			if err != nil {
				return err
			}
			defer logging.Down()
			rep, err := bench.CardSuite(cfg.Cards, cfg.OutputDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d rows: nlogn=%v bucket=%v\n",
				rep.Rows, rep.Comparator.Elapsed, rep.Bucket.Elapsed)
			return nil
		},
	}
	cmd.Flags().StringVar(&masked, "masked", "", "masked card number dump")
	cmd.Flags().StringVar(&detail, "detail", "", "card detail dump")
	return cmd
}

func configCmd() *cobra.Command {
	var write string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, or write it to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if write != "" {
				return cfg.Write(write)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
	cmd.Flags().StringVar(&write, "write", "", "write configuration to this path")
	return cmd
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ordbench",
		Short:         "Ordered set and sorting benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&outputDir, "out", ".", "output directory for result tables")
	root.PersistentFlags().BoolVar(&quiet, "quiet", false, "disable progress bars")
	root.AddCommand(treeCmd(), sortCmd(), cardsCmd(), configCmd())
	return root
}

func main() {
	err := rootCmd().Execute()
	if err != nil {
		logging.ErrorfWithError(err, "ordbench failed")
		os.Exit(1)
	}
}
