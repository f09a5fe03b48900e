package channels_test

import (
	"testing"
	"time"

	"github.com/alkime/slidebar/pkg/channels"
	"github.com/stretchr/testify/assert"
)

func TestSendNonBlock(t *testing.T) {
	t.Run("delivers when there is room", func(t *testing.T) {
		ch := make(chan int, 1)
		assert.NoError(t, channels.SendNonBlock(ch, 7))
		assert.Equal(t, 7, <-ch)
	})

	t.Run("full buffer", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 1
		assert.ErrorIs(t, channels.SendNonBlock(ch, 7), channels.ErrChannelFull)
	})

	t.Run("unbuffered without receiver", func(t *testing.T) {
		ch := make(chan int)
		assert.ErrorIs(t, channels.SendNonBlock(ch, 7), channels.ErrChannelFull)
	})

	t.Run("closed", func(t *testing.T) {
		ch := make(chan int, 1)
		close(ch)
		assert.ErrorIs(t, channels.SendNonBlock(ch, 7), channels.ErrChannelClosed)
	})
}

func TestSendWithTimeout(t *testing.T) {
	t.Run("receiver arrives in time", func(t *testing.T) {
		ch := make(chan int)
		go func() { <-ch }()
		assert.NoError(t, channels.SendWithTimeout(ch, 7, 100*time.Millisecond))
	})

	t.Run("times out", func(t *testing.T) {
		ch := make(chan int)
		assert.ErrorIs(t, channels.SendWithTimeout(ch, 7, time.Millisecond), channels.ErrChannelTimeout)
	})

	t.Run("closed", func(t *testing.T) {
		ch := make(chan int)
		close(ch)
		assert.ErrorIs(t, channels.SendWithTimeout(ch, 7, 10*time.Millisecond), channels.ErrChannelClosed)
	})
}

func TestReceiveAll(t *testing.T) {
	t.Run("until closed", func(t *testing.T) {
		ch := make(chan int, 3)
		ch <- 1
		ch <- 2
		ch <- 3
		close(ch)
		assert.Equal(t, []int{1, 2, 3}, channels.ReceiveAll(ch, time.Second, 0))
	})

	t.Run("until idle", func(t *testing.T) {
		ch := make(chan int, 2)
		ch <- 1
		assert.Equal(t, []int{1}, channels.ReceiveAll(ch, 10*time.Millisecond, 0))
	})

	t.Run("until limit", func(t *testing.T) {
		ch := make(chan int, 3)
		ch <- 1
		ch <- 2
		ch <- 3
		assert.Equal(t, []int{1, 2}, channels.ReceiveAll(ch, time.Second, 2))
	})
}
