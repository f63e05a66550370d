package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"githubportfolio/service"
	"githubportfolio/view"
)

var (
	fetchPage     bool
	fetchManual   bool
	fetchLanguage string
	fetchQuery    string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [handle]",
	Short: "Build one portfolio and print it as JSON",
	Long: `fetch runs a single aggregation for handle (default: GITHUB_USERNAME) and
prints the result. Fetch failures are logged and show up as empty sections.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := service.NewService(cfg)
		if err != nil {
			return err
		}
		defer svc.Close()

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		if fetchManual {
			record, err := svc.Manual(cmd.Context())
			if err != nil {
				return err
			}
			return enc.Encode(record)
		}

		var handle string
		if len(args) == 1 {
			handle = args[0]
		}
		result := svc.Aggregate(cmd.Context(), handle)

		if fetchPage {
			return enc.Encode(view.NewPage(result, view.PageOptions{
				Language: fetchLanguage,
				Query:    fetchQuery,
			}))
		}
		return enc.Encode(result)
	},
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchPage, "page", false, "print the laid-out page instead of the raw aggregate")
	fetchCmd.Flags().BoolVar(&fetchManual, "manual", false, "print the manual record instead")
	fetchCmd.Flags().StringVar(&fetchLanguage, "language", "", "with --page, only show projects in this language")
	fetchCmd.Flags().StringVar(&fetchQuery, "q", "", "with --page, only show projects matching this text")
}
