package vocab

type GroupSummary struct {
	GroupID     int    `gorm:"column:group_id" json:"group_id"`
	GroupNumber int    `gorm:"column:group_number" json:"group_number"`
	TitleKR     string `gorm:"column:title_kr" json:"title_kr"`
}

type GroupItemView struct {
	ItemID         int    `gorm:"column:item_id" json:"item_id"`
	DisplayOrder   int    `gorm:"column:display_order" json:"display_order"`
	SummaryMeaning string `gorm:"column:summary_meaning" json:"summary_meaning"`
	DisplayLetter  string `gorm:"column:display_letter" json:"display_letter"`
	Spelling       string `gorm:"column:spelling" json:"spelling"`
}

type GroupFooter struct {
	FooterPhraseEN string `gorm:"column:footer_phrase_en" json:"footer_phrase_en"`
	FooterPhraseKR string `gorm:"column:footer_phrase_kr" json:"footer_phrase_kr"`
}

// WordDetailView is the joined item/group/word/detail row. It doubles as the
// context handed to the hint generator.
type WordDetailView struct {
	ItemID             int    `gorm:"column:item_id" json:"item_id"`
	SummaryMeaning     string `gorm:"column:summary_meaning" json:"summary_meaning"`
	DisplayLetter      string `gorm:"column:display_letter" json:"display_letter"`
	GroupNumber        int    `gorm:"column:group_number" json:"group_number"`
	WordID             int    `gorm:"column:word_id" json:"word_id"`
	Spelling           string `gorm:"column:spelling" json:"spelling"`
	FullDefinition     string `gorm:"column:full_definition" json:"full_definition"`
	ExampleSentence    string `gorm:"column:example_sentence" json:"example_sentence"`
	ExampleTranslation string `gorm:"column:example_translation" json:"example_translation"`
	MnemonicTip        string `gorm:"column:mnemonic_tip" json:"mnemonic_tip"`
}

func (v *WordDetailView) IsEmpty() bool {
	return v == nil || *v == WordDetailView{}
}
