package notification

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"homework-status-bot/config"
)

// mockSender is a mock implementation of the Sender interface.
type mockSender struct {
	SendFunc func(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Send calls the mock SendFunc.
func (m *mockSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	return m.SendFunc(to, what, opts...)
}

func TestNotifier_Notify(t *testing.T) {
	var buf bytes.Buffer
	var gotTo, gotText string

	sender := &mockSender{
		SendFunc: func(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
			gotTo = to.Recipient()
			gotText, _ = what.(string)
			return &tele.Message{ID: 1}, nil
		},
	}
	n := New(sender, "123456", 0, zerolog.New(&buf))

	ok := n.Notify(context.Background(), "hello")

	assert.True(t, ok)
	assert.Equal(t, "123456", gotTo)
	assert.Equal(t, "hello", gotText)
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "message sent")
}

func TestNotifier_NotifySwallowsFailure(t *testing.T) {
	var buf bytes.Buffer
	calls := 0

	sender := &mockSender{
		SendFunc: func(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
			calls++
			return nil, errors.New("telegram: chat not found (400)")
		},
	}
	n := New(sender, "@missing", 0, zerolog.New(&buf))

	ok := n.Notify(context.Background(), "hello")

	assert.False(t, ok)
	assert.Equal(t, 1, calls, "delivery is never retried")
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "chat not found")
}

func TestNotifier_NotifyCancelledWhileThrottled(t *testing.T) {
	sender := &mockSender{
		SendFunc: func(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
			return &tele.Message{}, nil
		},
	}
	n := New(sender, "1", 0.001, zerolog.Nop())

	require.True(t, n.Notify(context.Background(), "first"), "the first message uses the burst")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.False(t, n.Notify(ctx, "second"))
}

func TestNewBot_Offline(t *testing.T) {
	bot, err := NewBot(config.TelegramConfig{TimeoutSeconds: 1}, "123:abc")
	require.NoError(t, err)
	assert.Equal(t, "123:abc", bot.Token)

	n := New(bot, "42", 1, zerolog.Nop())
	assert.Equal(t, "42", n.ChatID())
}
