package feed_test

import (
	"testing"

	"github.com/nDmitry/rssreader/internal/feed"
	"github.com/stretchr/testify/assert"
)

func TestTitleFromDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{
			name:        "First paragraph",
			description: `<p>Результаты по основным активам за 20 лет</p><p>Обновленные данные, включающие 2024 год.</p>`,
			expected:    "Результаты по основным активам за 20 лет",
		},
		{
			name:        "First line before a double break",
			description: `<b>Breaking news</b><br><br>Details follow in the second line.`,
			expected:    "Breaking news",
		},
		{
			name:        "Sentence ending with question mark",
			description: `Что случилось с рынком? Это очень длинное предложение, которое должно быть обрезано по первому вопросительному знаку.`,
			expected:    "Что случилось с рынком?",
		},
		{
			name:        "Sentence ending with exclamation mark",
			description: `Внимание! Важная информация о рынке акций.`,
			expected:    "Внимание!",
		},
		{
			name:        "Exactly 80 characters",
			description: `Ровно восемьдесят символов в этом заголовке чтобы проверить работу без троеточия`,
			expected:    "Ровно восемьдесят символов в этом заголовке чтобы проверить работу без троеточия",
		},
		{
			name:        "More than 80 characters, break at word boundary",
			description: `Этот заголовок длиннее восьмидесяти символов и должен быть обрезан по границе слова не нарушая целостность последнего слова в строке.`,
			expected:    "Этот заголовок длиннее восьмидесяти символов и должен быть обрезан по границе…",
		},
		{
			name:        "No spaces",
			description: `ThisIsAVeryLongWordWithoutAnySpacesOrBreaksToTestHowTheAlgorithmHandlesLongWordsWithoutSpaces`,
			expected:    "ThisIsAVeryLongWordWithoutAnySpacesOrBreaksToTestHowTheAlgorithmHandlesLongWord…",
		},
		{
			name:        "Trailing colon",
			description: `<p>Списки на неделю:</p><p>первый, второй</p>`,
			expected:    "Списки на неделю…",
		},
		{
			name:        "Empty",
			description: "",
			expected:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, feed.TitleFromDescription(tt.description))
		})
	}
}
