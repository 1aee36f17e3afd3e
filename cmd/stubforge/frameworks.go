package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stubforge/stubforge/internal/render"
	"github.com/stubforge/stubforge/pkg/spec"
)

func frameworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List registered target frameworks",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := render.NewRegistry()
			for _, name := range registry.List() {
				r, err := registry.Resolve(spec.Framework(name))
				if err != nil {
					return err
				}
				fmt.Printf("%-10s %-12s %s\n", r.Name(), r.Language(), r.FileExtension())
			}
			return nil
		},
	}
}
