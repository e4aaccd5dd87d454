package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/token-bubbles/market"
)

func listsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show the token lists found in the lists directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			lists := market.NewLists(cfg.Data.ListsDir)
			names, err := lists.Names()
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "%s %s\n\n", Brand.Sprint("lists"), Subtle.Sprint(lists.Dir()))
			rows := make([][]cell, 0, len(names))
			for _, name := range names {
				refs, err := lists.Load(name)
				if err != nil {
					rows = append(rows, []cell{{text: name}, {text: err.Error(), color: Warn}})
					continue
				}
				c := cell{text: fmt.Sprint(len(refs)), right: true}
				if name == cfg.Data.List {
					c.color = Brand
				}
				rows = append(rows, []cell{{text: name}, c})
			}
			printTable(os.Stdout, []string{"NAME", "TOKENS"}, rows)
			return nil
		},
	}
}
