package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const replHelp = `Enter       next seed
NUMBER      jump to that seed
:reload     re-read the grammar file
:help       this text
:quit       exit (also Ctrl+D)`

func newReplCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "step through seeds interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := loadTree(cfg.Grammar)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			seed := cfg.Seed
			for {
				in, err := ln.Prompt(fmt.Sprintf("weft[%d]> ", seed))
				if err != nil {
					// Ctrl+D or Ctrl+C ends the session.
					fmt.Fprintln(cmd.OutOrStdout())
					return nil
				}
				in = strings.TrimSpace(in)
				if in != "" {
					ln.AppendHistory(in)
				}

				switch {
				case in == ":quit":
					return nil
				case in == ":help":
					fmt.Fprintln(cmd.OutOrStdout(), replHelp)
					continue
				case in == ":reload":
					fresh, err := loadTree(cfg.Grammar)
					if err != nil {
						logger.Error("reload failed", "grammar", cfg.Grammar, "err", err)
						continue
					}
					tree = fresh
					logger.Info("grammar reloaded", "grammar", cfg.Grammar)
					continue
				case strings.HasPrefix(in, ":"):
					fmt.Fprintln(cmd.OutOrStdout(), "unknown command; :help lists commands")
					continue
				case in != "":
					n, err := strconv.ParseUint(in, 10, 64)
					if err != nil {
						fmt.Fprintln(cmd.OutOrStdout(), "expected a seed number; :help lists commands")
						continue
					}
					seed = n
				}

				fmt.Fprintln(cmd.OutOrStdout(), tree.Generate(seed))
				seed++
			}
		},
	}
	cmd.Flags().Uint64VarP(&cfg.Seed, "seed", "s", cfg.Seed, "first seed")
	return cmd
}
