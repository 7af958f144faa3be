//go:build unit

package nilcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type probe struct{}

type doer interface{ Do() }

type doerImpl struct{}

func (*doerImpl) Do() {}

func TestInterfaceDetectsNilValues(t *testing.T) {
	t.Parallel()

	var nilPtr *probe
	var nilSlice []string
	var nilMap map[string]int
	var nilChan chan int
	var nilFunc func()
	var nilIface doer

	assert.True(t, Interface(nil))
	assert.True(t, Interface(nilPtr))
	assert.True(t, Interface(nilSlice))
	assert.True(t, Interface(nilMap))
	assert.True(t, Interface(nilChan))
	assert.True(t, Interface(nilFunc))
	assert.True(t, Interface(nilIface))
}

func TestInterfaceDetectsTypedNilBehindInterface(t *testing.T) {
	t.Parallel()

	var impl *doerImpl
	var iface doer = impl

	assert.True(t, Interface(iface), "typed nil wrapped in a non-nil interface is still nil")
}

func TestInterfaceRejectsNonNilValues(t *testing.T) {
	t.Parallel()

	assert.False(t, Interface(&probe{}))
	assert.False(t, Interface([]string{}))
	assert.False(t, Interface(map[string]int{}))
	assert.False(t, Interface(0))
	assert.False(t, Interface("text"))
	assert.False(t, Interface(probe{}))
}
