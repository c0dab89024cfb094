package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFontRejectsGarbageData(t *testing.T) {
	_, err := LoadFont([]byte("not a ttf file"), "garbage")
	assert.Error(t, err)
}

func TestGetFontOnEmptyRegistryReturnsFalse(t *testing.T) {
	mu.Lock()
	savedFonts, savedOrder := fonts, order
	fonts, order = map[string]*Font{}, nil
	mu.Unlock()
	defer func() {
		mu.Lock()
		fonts, order = savedFonts, savedOrder
		mu.Unlock()
	}()

	_, ok := GetFont("")
	assert.False(t, ok)

	_, ok = GetFont("nonexistent")
	assert.False(t, ok)
}
