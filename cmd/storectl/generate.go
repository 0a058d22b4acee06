package main

import (
	"fmt"
	"strings"

	"sialkot-shop/internal/content"

	"github.com/spf13/cobra"
)

func (c *cli) generateCmd() *cobra.Command {
	kinds := make([]string, 0, len(content.Kinds()))
	for _, k := range content.Kinds() {
		kinds = append(kinds, string(k))
	}

	return &cobra.Command{
		Use:       "generate <kind> [input...]",
		Short:     "Generate store content",
		Long:      "Generates content of one kind (" + strings.Join(kinds, ", ") + "). Failed generations print the kind's fallback text.",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := content.ParseKind(args[0])
			if err != nil {
				return err
			}

			generator := content.Generator(content.Unavailable{})
			if c.cfg.GenAI.APIKey != "" {
				g, err := content.NewGenAIGenerator(cmd.Context(), c.cfg.GenAI.APIKey, c.cfg.GenAI.Model)
				if err != nil {
					return err
				}
				generator = g
			}

			gateway := content.NewGateway(generator, c.cfg.Shop.Name, c.cfg.GenAI.Timeout, c.log)
			text, err := gateway.Generate(cmd.Context(), kind, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
