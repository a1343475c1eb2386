package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const chromeOnMac = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const safariOnIPhone = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 " +
	"(KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1"

func TestParseDesktopBrowser(t *testing.T) {
	info := Parse(chromeOnMac)

	assert.Equal(t, "Chrome 120", info.Browser)
	assert.Contains(t, info.OS, "macOS")
	assert.Equal(t, "Desktop", info.Device)
}

func TestParseMobileBrowser(t *testing.T) {
	info := Parse(safariOnIPhone)

	assert.Contains(t, info.Browser, "Safari")
	assert.Contains(t, info.OS, "iOS")
	assert.NotEqual(t, "Unknown", info.Device)
}

func TestParseEmptyUserAgent(t *testing.T) {
	info := Parse("")

	assert.Equal(t, "Unknown", info.Browser)
	assert.Equal(t, "Unknown", info.OS)
	assert.Equal(t, "Unknown", info.Device)
}

func TestParseBlankUserAgent(t *testing.T) {
	info := Parse("   ")

	assert.Equal(t, "Unknown", info.Browser)
	assert.Equal(t, "Unknown", info.OS)
	assert.Equal(t, "Unknown", info.Device)
}

func TestMajorVersion(t *testing.T) {
	assert.Equal(t, "120", majorVersion("120.0.0.0"))
	assert.Equal(t, "17", majorVersion("17"))
	assert.Equal(t, "", majorVersion(""))
}
