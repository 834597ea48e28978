package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInterruptHandler(t *testing.T) {
	assert.NotNil(t, NewInterruptHandler(nil).writer)

	var buf bytes.Buffer
	h := NewInterruptHandler(&buf)
	assert.Same(t, &buf, h.writer)
	assert.False(t, h.WasInterrupted())
}

func TestInterrupt_PrintsOnce(t *testing.T) {
	var buf bytes.Buffer
	h := NewInterruptHandler(&buf)

	h.Interrupt()
	h.Interrupt()

	assert.True(t, h.WasInterrupted())
	assert.Equal(t, 1, strings.Count(buf.String(), "Interrupted!"))
	assert.Contains(t, buf.String(), "See you later")
}

func TestHandleInterrupts_StopCancels(t *testing.T) {
	h := NewInterruptHandler(&bytes.Buffer{})

	ctx, stop := h.HandleInterrupts(context.Background())
	select {
	case <-ctx.Done():
		t.Fatal("context canceled before stop")
	default:
	}

	stop()
	<-ctx.Done()
	assert.False(t, h.WasInterrupted())
}
