package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "print generated text for consecutive seeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := loadTree(cfg.Grammar)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := 0; i < cfg.Count; i++ {
				fmt.Fprintln(out, tree.Generate(cfg.Seed+uint64(i)))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&cfg.Count, "count", "n", cfg.Count, "number of outputs")
	cmd.Flags().Uint64VarP(&cfg.Seed, "seed", "s", cfg.Seed, "first seed")
	return cmd
}
