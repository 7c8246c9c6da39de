package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

var flatColumns = []string{
	"spelling",
	"summary_meaning",
	"display_letter",
	"full_definition",
	"example_sentence",
	"example_translation",
	"mnemonic_tip",
}

// DefaultGroup is the group the flat export belongs to when none is given.
var DefaultGroup = vocab.Group{
	GroupID:        1,
	GroupNumber:    1,
	TitleKR:        "탐욕 / 굶주림",
	FooterPhraseEN: "Bite off more than one can chew",
	FooterPhraseKR: "감당할 수 없이 과욕을 부리다",
}

// Convert reads a flat CSV with one row per word placement and splits it into
// a Dataset for group. Row n (1-based) gets display order n. Item, detail and
// word ids continue after the highest ids in base, and spellings already in
// base keep their word id, so several converted groups can share one
// database. With a nil base, ids start at 1. Words are deduplicated by trimmed
// spelling in order of first appearance.
func Convert(r io.Reader, group vocab.Group, base *Dataset) (*Dataset, error) {
	ids, err := newIDAllocator(base, group.GroupID)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Dataset{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	index, err := headerIndex(header, flatColumns)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	added := make(map[int]bool)
	row := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		if isBlank(record) {
			continue
		}
		row++

		field := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		spelling := strings.TrimSpace(field("spelling"))
		if spelling == "" {
			return nil, fmt.Errorf("row %d: empty spelling", row)
		}

		wordID := ids.word(spelling)
		if !added[wordID] {
			added[wordID] = true
			ds.Words = append(ds.Words, vocab.Word{WordID: wordID, Spelling: spelling})
		}

		ds.Items = append(ds.Items, vocab.GroupItem{
			ItemID:         ids.lastItem + row,
			GroupID:        group.GroupID,
			WordID:         wordID,
			DisplayOrder:   row,
			SummaryMeaning: field("summary_meaning"),
			DisplayLetter:  field("display_letter"),
		})
		ds.Details = append(ds.Details, vocab.WordDetail{
			DetailID:           ids.lastDetail + row,
			WordID:             wordID,
			FullDefinition:     field("full_definition"),
			ExampleSentence:    field("example_sentence"),
			ExampleTranslation: field("example_translation"),
			MnemonicTip:        field("mnemonic_tip"),
		})
	}

	if row == 0 {
		return &Dataset{}, nil
	}
	ds.Groups = []vocab.Group{group}
	return ds, nil
}

// idAllocator hands out ids that do not collide with an existing dataset.
type idAllocator struct {
	lastItem   int
	lastDetail int
	lastWord   int
	words      map[string]int
}

func newIDAllocator(base *Dataset, groupID int) (*idAllocator, error) {
	ids := &idAllocator{words: make(map[string]int)}
	if base == nil {
		return ids, nil
	}

	for _, g := range base.Groups {
		if g.GroupID == groupID {
			return nil, fmt.Errorf("group %d already exists in the base dataset", groupID)
		}
	}
	for _, it := range base.Items {
		ids.lastItem = max(ids.lastItem, it.ItemID)
	}
	for _, d := range base.Details {
		ids.lastDetail = max(ids.lastDetail, d.DetailID)
	}
	for _, w := range base.Words {
		ids.lastWord = max(ids.lastWord, w.WordID)
		spelling := strings.TrimSpace(w.Spelling)
		if _, ok := ids.words[spelling]; !ok {
			ids.words[spelling] = w.WordID
		}
	}
	return ids, nil
}

// word returns the id for spelling, allocating the next one on first sight.
func (a *idAllocator) word(spelling string) int {
	if id, ok := a.words[spelling]; ok {
		return id
	}
	a.lastWord++
	a.words[spelling] = a.lastWord
	return a.lastWord
}

// headerIndex maps each required column to its position. A UTF-8 BOM on the
// first cell is ignored.
func headerIndex(header []string, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
