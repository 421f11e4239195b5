package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

func TestSafeGo(t *testing.T) {
	ran := false
	done := SafeGo(logger.Discard(), "ok", func() { ran = true })

	_, open := <-done
	assert.False(t, open)
	assert.True(t, ran)
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	done := SafeGo(logger.Discard(), "boom", func() { panic("boom") })

	assert.Equal(t, "boom", <-done)
	_, open := <-done
	assert.False(t, open)
}
