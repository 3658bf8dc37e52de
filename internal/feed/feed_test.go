package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweet_Summarize(t *testing.T) {
	tw := Tweet{
		Username: "horse_ebooks",
		Content:  "of course, as you probably already know",
	}

	assert.Equal(t, "@horse_ebooks", tw.SummarizeAuthor())
	assert.Equal(t, "@horse_ebooks: of course, as you probably already know", tw.Summarize())
}

func TestNewsArticle_UsesDefaultSummary(t *testing.T) {
	a := NewsArticle{
		Headline: "Penguins win the Stanley Cup Championship!",
		Location: "Pittsburgh, PA, USA",
		Author:   "Iceburgh",
	}

	assert.Equal(t, "(Read more from @Iceburgh...)", a.Summarize())
	assert.Equal(t, a.Summarize(), DefaultSummary(a))
}

func TestNotify(t *testing.T) {
	var sb strings.Builder
	err := Notify(&sb, Tweet{Username: "gopher", Content: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "Breaking news! @gopher: hi\n", sb.String())
}
