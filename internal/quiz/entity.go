package quiz

const (
	FeedbackCorrect   = "Great job! That's correct."
	FeedbackIncorrect = "Incorrect, please try again."
)

// AnswerKey is the stored spelling for one (item, group) placement.
type AnswerKey struct {
	ItemID         int    `gorm:"column:item_id"`
	GroupID        int    `gorm:"column:group_id"`
	SummaryMeaning string `gorm:"column:summary_meaning"`
	DisplayLetter  string `gorm:"column:display_letter"`
	Spelling       string `gorm:"column:spelling"`
}

// Submission is the body of POST /quiz/submit. UserID is accepted for future
// attempt logging and is not stored.
type Submission struct {
	ItemID     int    `json:"item_id"`
	UserAnswer string `json:"user_answer"`
	GroupID    int    `json:"group_id"`
	UserID     int    `json:"user_id"`
}

type Feedback struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	UserAnswer    string `json:"user_answer"`
	Feedback      string `json:"feedback"`
}

type HintRequest struct {
	ItemID int `json:"item_id"`
	UserID int `json:"user_id"`
}

type HintResponse struct {
	ItemID int    `json:"item_id"`
	Hint   string `json:"hint"`
}
