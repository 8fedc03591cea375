package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSetting(t *testing.T) {
	settingsMu.Lock()
	settingsCache = map[string]string{"authority_addr": "0xabc"}
	settingsMu.Unlock()
	t.Cleanup(func() {
		settingsMu.Lock()
		settingsCache = nil
		settingsMu.Unlock()
	})

	assert.Equal(t, "0xabc", GetSetting("authority_addr"))
	assert.Equal(t, "", GetSetting("missing"))
}

func TestGetSettingBeforeLoad(t *testing.T) {
	// A nil cache reads as empty rather than panicking, so env fallbacks
	// kick in when the settings table was never loaded.
	assert.Equal(t, "", GetSetting("anything"))
}
