package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"bucket-catalog/feature/catalog"

	"github.com/spf13/cobra"
)

// contentsCmd represents the contents command
var contentsCmd = &cobra.Command{
	Use:   "contents",
	Short: "Print the bucket catalog",
	Long:  `Builds the catalog once, exactly as GET /contents would, and prints it as a table or JSON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		term, _ := cmd.Flags().GetString("filter")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		e, err := setup(nil)
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		contents, err := catalog.NewService(e.bucket, e.logger).Contents(cmd.Context(), term)
		if err != nil {
			if catalog.IsTaxonomyError(err) {
				return fmt.Errorf("bucket content violates catalog rules: %w", err)
			}
			return fmt.Errorf("failed to build catalog: %w", err)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(contents, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FILE\tTAGS\tETAG")
		for _, entry := range contents.Data {
			fmt.Fprintf(w, "%s\t%s\t%s\n", entry.FileName, entry.Tags, entry.ETag)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d file(s)\n", len(contents.Data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(contentsCmd)
	contentsCmd.Flags().String("filter", "", "Only list files whose name or tags contain this term")
	contentsCmd.Flags().Bool("json", false, "Output the catalog as JSON")
}
