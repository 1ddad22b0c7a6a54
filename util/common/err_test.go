package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorf(t *testing.T) {
	err := NewErrorf("listen on %s: %v", "127.0.0.1:5000", errors.New("address in use"))
	assert.EqualError(t, err, "listen on 127.0.0.1:5000: address in use")
}

func TestCombine(t *testing.T) {
	assert.Nil(t, Combine(nil, nil))

	err := Combine(errors.New("shutdown failed"), nil, errors.New("close failed"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown failed")
	assert.Contains(t, err.Error(), "close failed")
}

func TestRecoverSwallowsPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		defer Recover("")
		panic("boom")
	})
}
