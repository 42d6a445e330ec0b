package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRegion(t *testing.T) {
	for _, region := range Regions {
		assert.True(t, IsValidRegion(string(region)), "expected %q to be valid", region)
	}

	assert.False(t, IsValidRegion(""))
	assert.False(t, IsValidRegion("london"), "region names are case sensitive")
	assert.False(t, IsValidRegion("Atlantis"))
}
