package ids

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIsStrictlyIncreasing(t *testing.T) {
	prev := Next()
	for i := 0; i < 1000; i++ {
		cur := Next()
		p, _ := Time(prev)
		c, _ := Time(cur)
		require.True(t, c.After(p), "id %s should be after %s", cur, prev)
		prev = cur
	}
}

func TestTime(t *testing.T) {
	before := time.Now().Add(-time.Second)
	id := Next()
	ts, ok := Time(id)
	require.True(t, ok)
	assert.True(t, ts.After(before))

	_, ok = Time("not-a-number")
	assert.False(t, ok)

	ts, ok = Time("1700000000000")
	require.True(t, ok)
	assert.Equal(t, int64(1700000000000), ts.UnixMilli())
}
