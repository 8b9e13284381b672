package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusTrackerSingleRemoval(t *testing.T) {
	var f FocusTracker
	assert.False(t, f.Observe(3), "first observation only primes")
	assert.False(t, f.Observe(4))
	assert.True(t, f.Observe(3))
	assert.False(t, f.Observe(3))
	assert.False(t, f.Observe(1), "removing two at once does not move focus")
	assert.True(t, f.Observe(0))
	assert.False(t, f.Observe(0))
}

func TestFocusTrackerFirstObservationAfterLoad(t *testing.T) {
	var f FocusTracker
	assert.False(t, f.Observe(0))
	assert.False(t, f.Observe(5))
	assert.True(t, f.Observe(4))
}
