package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

// WriteDir writes the four relational CSV files into dir, creating it if needed.
func WriteDir(dir string, ds *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	groups := make([][]string, 0, len(ds.Groups))
	for _, g := range ds.Groups {
		groups = append(groups, []string{
			strconv.Itoa(g.GroupID),
			strconv.Itoa(g.GroupNumber),
			g.TitleKR,
			g.FooterPhraseEN,
			g.FooterPhraseKR,
		})
	}

	words := make([][]string, 0, len(ds.Words))
	for _, w := range ds.Words {
		words = append(words, []string{strconv.Itoa(w.WordID), w.Spelling})
	}

	items := make([][]string, 0, len(ds.Items))
	for _, it := range ds.Items {
		items = append(items, []string{
			strconv.Itoa(it.ItemID),
			strconv.Itoa(it.GroupID),
			strconv.Itoa(it.WordID),
			strconv.Itoa(it.DisplayOrder),
			it.SummaryMeaning,
			it.DisplayLetter,
		})
	}

	details := make([][]string, 0, len(ds.Details))
	for _, d := range ds.Details {
		details = append(details, []string{
			strconv.Itoa(d.DetailID),
			strconv.Itoa(d.WordID),
			d.FullDefinition,
			d.ExampleSentence,
			d.ExampleTranslation,
			d.MnemonicTip,
		})
	}

	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{GroupsFile, groupsHeader, groups},
		{WordsFile, wordsHeader, words},
		{GroupItemsFile, groupItemsHeader, items},
		{WordDetailsFile, wordDetailsHeader, details},
	}
	for _, f := range files {
		if err := writeCSV(filepath.Join(dir, f.name), f.header, f.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, header []string, rows [][]string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadDir loads the four relational CSV files from dir. Columns are matched
// by header name, so column order in the files does not matter.
func ReadDir(dir string) (*Dataset, error) {
	ds := &Dataset{}

	err := readCSV(filepath.Join(dir, GroupsFile), groupsHeader, func(row csvRow) error {
		g := vocab.Group{
			TitleKR:        row.str("title_kr"),
			FooterPhraseEN: row.str("footer_phrase_en"),
			FooterPhraseKR: row.str("footer_phrase_kr"),
		}
		var err error
		if g.GroupID, err = row.atoi("group_id"); err != nil {
			return err
		}
		if g.GroupNumber, err = row.atoi("group_number"); err != nil {
			return err
		}
		ds.Groups = append(ds.Groups, g)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readCSV(filepath.Join(dir, WordsFile), wordsHeader, func(row csvRow) error {
		id, err := row.atoi("word_id")
		if err != nil {
			return err
		}
		ds.Words = append(ds.Words, vocab.Word{WordID: id, Spelling: row.str("spelling")})
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readCSV(filepath.Join(dir, GroupItemsFile), groupItemsHeader, func(row csvRow) error {
		it := vocab.GroupItem{
			SummaryMeaning: row.str("summary_meaning"),
			DisplayLetter:  row.str("display_letter"),
		}
		var err error
		if it.ItemID, err = row.atoi("item_id"); err != nil {
			return err
		}
		if it.GroupID, err = row.atoi("group_id"); err != nil {
			return err
		}
		if it.WordID, err = row.atoi("word_id"); err != nil {
			return err
		}
		if it.DisplayOrder, err = row.atoi("display_order"); err != nil {
			return err
		}
		ds.Items = append(ds.Items, it)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readCSV(filepath.Join(dir, WordDetailsFile), wordDetailsHeader, func(row csvRow) error {
		d := vocab.WordDetail{
			FullDefinition:     row.str("full_definition"),
			ExampleSentence:    row.str("example_sentence"),
			ExampleTranslation: row.str("example_translation"),
			MnemonicTip:        row.str("mnemonic_tip"),
		}
		var err error
		if d.DetailID, err = row.atoi("detail_id"); err != nil {
			return err
		}
		if d.WordID, err = row.atoi("word_id"); err != nil {
			return err
		}
		ds.Details = append(ds.Details, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ds, nil
}

type csvRow struct {
	line   int
	record []string
	index  map[string]int
}

func (r csvRow) str(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	return r.record[i]
}

func (r csvRow) atoi(name string) (int, error) {
	v, err := strconv.Atoi(r.str(name))
	if err != nil {
		return 0, fmt.Errorf("line %d: %s: %w", r.line, name, err)
	}
	return v, nil
}

func readCSV(path string, header []string, fn func(csvRow) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	head, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s: read header: %w", path, err)
	}
	index, err := headerIndex(head, header)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("%s: line %d: %w", path, line, err)
		}
		if isBlank(record) {
			continue
		}
		if err := fn(csvRow{line: line, record: record, index: index}); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
}
