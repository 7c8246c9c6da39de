package aihint

import (
	"fmt"

	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

// NoSpellingRule is the prompt line that keeps the answer out of the hint.
const NoSpellingRule = "- Do not mention the exact English spelling."

const hintPromptTemplate = `
You are a helpful bilingual vocabulary tutor. The student only saw the Korean meaning
and wants an English hint to recall the word. Provide ONE short, encouraging hint
in Korean that nudges them toward the answer without revealing the spelling.

Word data (do not reveal directly):
- English spelling: %s
- Summary meaning: %s
- Full definition: %s
- Example sentence: %s
- Example translation: %s
- Mnemonic tip: %s

Constraints:
- Output must be under 50 Korean characters if possible.
` + NoSpellingRule + `
- Focus on imagery, situations, or root meanings to jog memory.
`

func BuildPrompt(wc *vocab.WordDetailView) string {
	return fmt.Sprintf(
		hintPromptTemplate,
		wc.Spelling,
		wc.SummaryMeaning,
		wc.FullDefinition,
		wc.ExampleSentence,
		wc.ExampleTranslation,
		wc.MnemonicTip,
	)
}
