package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tfsmatch/internal/filters"
)

func newFiltersCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "filters <category>",
		Short:       "Show the corpus filters a capture category resolves to",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			category := args[0]
			resolved := filters.Resolve(category)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Category %q resolves to %d filter(s):\n", category, len(resolved))
			for _, f := range resolved {
				if f.All {
					fmt.Fprintln(out, "  (none: whole corpus)")
					continue
				}
				fmt.Fprintf(out, "  %s\n", f.Keyword)
			}
			return nil
		},
	}
}
