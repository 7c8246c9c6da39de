package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/vocaquiz/internal/batch"
	"github.com/saulo-duarte/vocaquiz/internal/config"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every table back out in the import CSV layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer config.Close(db)

		ds, err := batch.NewExporter(db).Export(cmd.Context())
		if err != nil {
			return err
		}
		if err := batch.WriteDir(exportDir, ds); err != nil {
			return err
		}

		c := ds.Counts()
		cmd.Printf("Exported %d groups, %d words, %d group items, %d word details to %s\n",
			c.Groups, c.Words, c.Items, c.Details, exportDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "export", "directory to write the CSV files into")
}
