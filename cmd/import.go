package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/vocaquiz/internal/batch"
	"github.com/saulo-duarte/vocaquiz/internal/config"
)

var importDir string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Upsert groups, words, items and details from CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := batch.ReadDir(importDir)
		if err != nil {
			return err
		}

		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer config.Close(db)

		res, err := batch.NewImporter(db).Import(cmd.Context(), ds)
		if err != nil {
			return err
		}
		printCounts(cmd, "Imported", res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importDir, "dir", "d", "data", "directory holding the import CSV files")
}

func printCounts(cmd *cobra.Command, verb string, res *batch.ImportResult) {
	cmd.Printf("%s %d groups, %d words, %d group items, %d word details (run %s)\n",
		verb, res.Counts.Groups, res.Counts.Words, res.Counts.Items, res.Counts.Details, res.RunID)
}
