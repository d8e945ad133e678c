package botdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	d := New()

	crawler := d.Classify("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	assert.True(t, crawler.Detected)
	assert.Equal(t, "crawler", crawler.Reason)
	assert.Equal(t, 1.0, crawler.Weight)

	empty := d.Classify("   ")
	assert.True(t, empty.Detected)
	assert.Equal(t, "empty-user-agent", empty.Reason)

	browser := d.Classify("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	assert.False(t, browser.Detected)
	assert.Equal(t, 0.0, browser.Weight)
}
