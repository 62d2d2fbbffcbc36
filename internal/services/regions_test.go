package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StateRegion(t *testing.T) {

	assert.Equal(t, "West Coast", StateRegion("CA"))
	assert.Equal(t, "Southwest", StateRegion("TX"))
	assert.Equal(t, "Northeast", StateRegion("NY"))
	assert.Equal(t, "Other", StateRegion("AK"))
	assert.Equal(t, "Other", StateRegion(""))
}
