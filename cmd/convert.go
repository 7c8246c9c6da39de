package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/vocaquiz/internal/batch"
	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

var convertOpts struct {
	input    string
	out      string
	base     string
	groupID  int
	number   int
	titleKR  string
	footerEN string
	footerKR string
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Split a flat word CSV into the four import CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		var base *batch.Dataset
		if convertOpts.base != "" {
			ds, err := batch.ReadDir(convertOpts.base)
			if err != nil {
				return fmt.Errorf("read base: %w", err)
			}
			base = ds
		} else if convertOpts.groupID != batch.DefaultGroup.GroupID {
			return fmt.Errorf("--base is required for group %d so its ids do not overwrite group %d",
				convertOpts.groupID, batch.DefaultGroup.GroupID)
		}

		f, err := os.Open(convertOpts.input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()

		group := vocab.Group{
			GroupID:        convertOpts.groupID,
			GroupNumber:    convertOpts.number,
			TitleKR:        convertOpts.titleKR,
			FooterPhraseEN: convertOpts.footerEN,
			FooterPhraseKR: convertOpts.footerKR,
		}
		ds, err := batch.Convert(f, group, base)
		if err != nil {
			return err
		}
		if err := batch.WriteDir(convertOpts.out, ds); err != nil {
			return err
		}

		c := ds.Counts()
		config.WithContext(cmd.Context()).
			WithField("out", convertOpts.out).
			Infof("Converted %d words into %d items", c.Words, c.Items)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	f := convertCmd.Flags()
	f.StringVarP(&convertOpts.input, "input", "i", "", "flat CSV to convert")
	f.StringVarP(&convertOpts.out, "out", "o", "data", "directory for the generated CSV files")
	f.StringVar(&convertOpts.base, "base", "", "directory of already imported CSV files; new ids continue after it")
	f.IntVar(&convertOpts.groupID, "group-id", batch.DefaultGroup.GroupID, "group id for every row")
	f.IntVar(&convertOpts.number, "group-number", batch.DefaultGroup.GroupNumber, "display number of the group")
	f.StringVar(&convertOpts.titleKR, "title-kr", batch.DefaultGroup.TitleKR, "Korean group title")
	f.StringVar(&convertOpts.footerEN, "footer-en", batch.DefaultGroup.FooterPhraseEN, "English footer phrase")
	f.StringVar(&convertOpts.footerKR, "footer-kr", batch.DefaultGroup.FooterPhraseKR, "Korean footer phrase")
	_ = convertCmd.MarkFlagRequired("input")
}
