// Command weft compiles a grammar file and prints deterministic text for a
// run of seeds, or steps through seeds interactively.
//
// Usage:
//
//	weft gen  -g tavern.weft -n 10 -s 0
//	weft repl -g tavern.weft
//
// Defaults come from WEFT_GRAMMAR, WEFT_COUNT and WEFT_SEED; flags override.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/weftlang/weft/compiler"
	"github.com/weftlang/weft/parse"
)

// config carries the CLI defaults resolvable from the environment.
type config struct {
	Grammar string `env:"WEFT_GRAMMAR"`
	Count   int    `env:"WEFT_COUNT" envDefault:"1"`
	Seed    uint64 `env:"WEFT_SEED" envDefault:"0"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "weft:", err)
		os.Exit(1)
	}
	if err := newRootCmd(&cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config) *cobra.Command {
	root := &cobra.Command{
		Use:          "weft",
		Short:        "deterministic text generation from grammar files",
		Long:         "weft compiles a generative grammar once and renders it for integer seeds:\nsame seed, same text.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfg.Grammar, "grammar", "g", cfg.Grammar, "grammar file (default $WEFT_GRAMMAR)")
	root.AddCommand(newGenCmd(cfg), newReplCmd(cfg))
	return root
}

// loadTree parses and compiles the grammar at path.
func loadTree(path string) (*compiler.Tree, error) {
	if path == "" {
		return nil, errors.New("weft: no grammar file (use --grammar or WEFT_GRAMMAR)")
	}
	node, err := parse.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(node)
}
