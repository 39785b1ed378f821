package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantMsg string
	}{
		{name: "trims", in: "  My Chat  ", want: "My Chat"},
		{name: "trailing space", in: "My Chat ", want: "My Chat"},
		{name: "single char", in: "x", want: "x"},
		{name: "exactly max", in: strings.Repeat("a", 200), want: strings.Repeat("a", 200)},
		{name: "max after trim", in: "\t" + strings.Repeat("a", 200) + "\n", want: strings.Repeat("a", 200)},
		{name: "multibyte counted as characters", in: strings.Repeat("ж", 200), want: strings.Repeat("ж", 200)},
		{name: "empty", in: "", wantMsg: "title must not be empty"},
		{name: "whitespace only", in: "   \t\n", wantMsg: "title must not be empty"},
		{name: "too long", in: strings.Repeat("a", 201), wantMsg: "title must be at most 200 characters"},
		{name: "too long multibyte", in: strings.Repeat("ж", 201), wantMsg: "title must be at most 200 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTitle(tt.in)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.True(t, IsValidation(err))

				var ce *ChatError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.wantMsg, ce.Message)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeText(t *testing.T) {
	got, err := NormalizeText("  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = NormalizeText(strings.Repeat("b", 5000))
	require.NoError(t, err)
	assert.Len(t, got, 5000)

	_, err = NormalizeText("   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text must not be empty")

	_, err = NormalizeText(strings.Repeat("b", 5001))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text must be at most 5000 characters")
}
