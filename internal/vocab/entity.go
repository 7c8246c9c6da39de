package vocab

// GroupTableName is the canonical table for groups. Older schema revisions
// declared "groups" while every query used "group_list"; group_list won.
const GroupTableName = "group_list"

type Group struct {
	GroupID        int    `gorm:"column:group_id;primaryKey;autoIncrement:false" json:"group_id"`
	GroupNumber    int    `gorm:"column:group_number;not null" json:"group_number"`
	TitleKR        string `gorm:"column:title_kr;size:100;not null" json:"title_kr"`
	FooterPhraseEN string `gorm:"column:footer_phrase_en;size:255" json:"footer_phrase_en"`
	FooterPhraseKR string `gorm:"column:footer_phrase_kr;size:255" json:"footer_phrase_kr"`

	Items []GroupItem `gorm:"foreignKey:GroupID;references:GroupID" json:"-"`
}

func (Group) TableName() string { return GroupTableName }

type Word struct {
	WordID   int    `gorm:"column:word_id;primaryKey;autoIncrement:false" json:"word_id"`
	Spelling string `gorm:"column:spelling;size:100;not null" json:"spelling"`

	Items   []GroupItem  `gorm:"foreignKey:WordID;references:WordID" json:"-"`
	Details []WordDetail `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (Word) TableName() string { return "words" }

type GroupItem struct {
	ItemID         int    `gorm:"column:item_id;primaryKey;autoIncrement:false" json:"item_id"`
	GroupID        int    `gorm:"column:group_id;not null;index" json:"group_id"`
	WordID         int    `gorm:"column:word_id;not null;index" json:"word_id"`
	DisplayOrder   int    `gorm:"column:display_order;not null" json:"display_order"`
	SummaryMeaning string `gorm:"column:summary_meaning;size:100" json:"summary_meaning"`
	DisplayLetter  string `gorm:"column:display_letter;size:1" json:"display_letter"`
}

func (GroupItem) TableName() string { return "group_items" }

type WordDetail struct {
	DetailID           int    `gorm:"column:detail_id;primaryKey;autoIncrement:false" json:"detail_id"`
	WordID             int    `gorm:"column:word_id;not null;index" json:"word_id"`
	FullDefinition     string `gorm:"column:full_definition;size:255" json:"full_definition"`
	ExampleSentence    string `gorm:"column:example_sentence;size:255" json:"example_sentence"`
	ExampleTranslation string `gorm:"column:example_translation;size:255" json:"example_translation"`
	MnemonicTip        string `gorm:"column:mnemonic_tip;size:255" json:"mnemonic_tip"`
}

func (WordDetail) TableName() string { return "word_details" }

// User is migrated with the rest of the schema but no endpoint reads it yet.
type User struct {
	ID             int    `gorm:"column:id;primaryKey" json:"id"`
	Username       string `gorm:"column:username;size:150;uniqueIndex" json:"username"`
	HashedPassword string `gorm:"column:hashed_password;size:255" json:"-"`
}

func (User) TableName() string { return "users" }
