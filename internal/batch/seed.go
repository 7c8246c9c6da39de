package batch

import (
	"context"

	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

type seedWord struct {
	spelling, summary, letter, definition, example, translation, tip string
}

var basicEmotions = []seedWord{
	{"Happy", "행복한", "H", "Feeling or showing pleasure or contentment.", "I am so happy today.", "나는 오늘 너무 행복해.", "Think of a smiling face."},
	{"Sad", "슬픈", "S", "Feeling or showing sorrow; unhappy.", "The movie was very sad.", "그 영화는 매우 슬펐어.", "Think of tears."},
	{"Angry", "화난", "A", "Having a strong feeling of or showing annoyance, displeasure, or hostility.", "He was angry about the mistake.", "그는 그 실수에 대해 화가 났다.", "Red face."},
	{"Excited", "신난", "E", "Very enthusiastic and eager.", "She is excited about the trip.", "그녀는 여행에 대해 들떠 있다.", "Jumping up and down."},
	{"Nervous", "긴장한", "N", "Easily agitated or alarmed; tending to be anxious; highly strung.", "I get nervous before exams.", "나는 시험 전에 긴장해.", "Shaking hands."},
}

// SeedDataset is the small "Basic Emotions" group used for local development.
// It occupies group 1 and ids 1-5 in the other tables.
func SeedDataset() *Dataset {
	ds := &Dataset{
		Groups: []vocab.Group{{
			GroupID:        1,
			GroupNumber:    1,
			TitleKR:        "기본 감정",
			FooterPhraseEN: "Emotions make us human",
			FooterPhraseKR: "감정은 우리를 인간답게 만든다",
		}},
	}

	for i, w := range basicEmotions {
		id := i + 1
		ds.Words = append(ds.Words, vocab.Word{WordID: id, Spelling: w.spelling})
		ds.Items = append(ds.Items, vocab.GroupItem{
			ItemID:         id,
			GroupID:        1,
			WordID:         id,
			DisplayOrder:   id,
			SummaryMeaning: w.summary,
			DisplayLetter:  w.letter,
		})
		ds.Details = append(ds.Details, vocab.WordDetail{
			DetailID:           id,
			WordID:             id,
			FullDefinition:     w.definition,
			ExampleSentence:    w.example,
			ExampleTranslation: w.translation,
			MnemonicTip:        w.tip,
		})
	}
	return ds
}

// Seed upserts SeedDataset, so running it twice is harmless.
func (im *Importer) Seed(ctx context.Context) (*ImportResult, error) {
	return im.Import(ctx, SeedDataset())
}
