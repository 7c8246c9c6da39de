// Package batch converts flat vocabulary CSV exports into the four relational
// CSV files and loads those files into the database with upserts.
package batch

import "github.com/saulo-duarte/vocaquiz/internal/vocab"

const (
	GroupsFile      = "groups.csv"
	WordsFile       = "words.csv"
	GroupItemsFile  = "group_items.csv"
	WordDetailsFile = "word_details.csv"
)

var (
	groupsHeader      = []string{"group_id", "group_number", "title_kr", "footer_phrase_en", "footer_phrase_kr"}
	wordsHeader       = []string{"word_id", "spelling"}
	groupItemsHeader  = []string{"item_id", "group_id", "word_id", "display_order", "summary_meaning", "display_letter"}
	wordDetailsHeader = []string{"detail_id", "word_id", "full_definition", "example_sentence", "example_translation", "mnemonic_tip"}
)

// Dataset is one batch: every row carries an explicit surrogate key.
type Dataset struct {
	Groups  []vocab.Group
	Words   []vocab.Word
	Items   []vocab.GroupItem
	Details []vocab.WordDetail
}

func (d *Dataset) Empty() bool {
	return d == nil || len(d.Groups)+len(d.Words)+len(d.Items)+len(d.Details) == 0
}

// Counts is a per-table row count, used for import results and round-trip checks.
type Counts struct {
	Groups  int `json:"groups"`
	Words   int `json:"words"`
	Items   int `json:"group_items"`
	Details int `json:"word_details"`
}

func (d *Dataset) Counts() Counts {
	if d == nil {
		return Counts{}
	}
	return Counts{
		Groups:  len(d.Groups),
		Words:   len(d.Words),
		Items:   len(d.Items),
		Details: len(d.Details),
	}
}
