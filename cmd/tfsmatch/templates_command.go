package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tfsmatch/internal/config"
	"tfsmatch/internal/corpus"
)

func newTemplatesCommand(ctx *commandContext) *cobra.Command {
	var dbPath string
	var filter string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List templates in the corpus",
		Long: "List the corpus templates an optional keyword filter would admit. " +
			"The filter uses the same token rules as a batch run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := strings.TrimSpace(dbPath)
			if path == "" {
				path = cfg.Paths.TemplateDB
			} else if path, err = config.ExpandPath(path); err != nil {
				return err
			}
			if path == "" {
				return errors.New("template corpus not set; use --db or paths.template_db")
			}

			store, err := corpus.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			templates, err := store.Templates(cmd.Context(), filter)
			if err != nil {
				return err
			}
			total, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(templates) == 0 {
				fmt.Fprintf(out, "No templates match filter %q (%d in corpus)\n", filter, total)
				return nil
			}

			rows := make([][]string, len(templates))
			for i, tmpl := range templates {
				rows[i] = []string{
					strconv.FormatInt(tmpl.ID, 10),
					tmpl.CLICommand,
					strconv.Itoa(len(tmpl.Content)),
				}
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Command", "Bytes"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "%d of %d templates\n", len(templates), total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dbPath, "db", "d", "", "Path to the template corpus database")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Keyword filter applied to command labels")

	return cmd
}
