package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongest(t *testing.T) {
	assert.Equal(t, "abcd", Longest("abcd", "xy"))
	assert.Equal(t, "abcd", Longest("xy", "abcd"))

	// Equal lengths: the second argument wins.
	assert.Equal(t, "bb", Longest("aa", "bb"))
	assert.Equal(t, "", Longest("", ""))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Hello", Excerpt("Hello-World", 5))
	assert.Equal(t, "Hello", Excerpt("Hello", 10))
	assert.Equal(t, "", Excerpt("whatever", 0))
	assert.Equal(t, "", Excerpt("whatever", -1))

	// Multi-byte characters are kept whole.
	assert.Equal(t, "héllo", Excerpt("héllo wörld", 5))
	assert.Equal(t, "🚀✅", Excerpt("🚀✅🚀", 2))
}
