package app

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "japanese terminators",
			text: "猫が好き。犬も好き！鳥は？",
			want: []string{"猫が好き。", "犬も好き！", "鳥は？"},
		},
		{
			name: "newlines split",
			text: "一行目\n二行目\r\n三行目",
			want: []string{"一行目", "二行目", "三行目"},
		},
		{
			name: "trailing text without terminator",
			text: "終わらない文",
			want: []string{"終わらない文"},
		},
		{
			name: "blank lines dropped",
			text: "\n\n猫。\n\n",
			want: []string{"猫。"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitSentences(id, tt.text)
			require.Len(t, got, len(tt.want))
			for i, s := range got {
				assert.Equal(t, tt.want[i], s.Text)
				assert.Equal(t, i+1, s.ID)
				assert.Equal(t, id, s.SourceID)
			}
		})
	}
}
