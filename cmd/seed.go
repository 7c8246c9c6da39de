package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/vocaquiz/internal/batch"
	"github.com/saulo-duarte/vocaquiz/internal/config"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the Basic Emotions sample group",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer config.Close(db)

		res, err := batch.NewImporter(db).Seed(cmd.Context())
		if err != nil {
			return err
		}
		printCounts(cmd, "Seeded", res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
