package systems

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageLog_RecentNewestFirst(t *testing.T) {
	ml := NewMessageLog()
	ml.Add("first")
	ml.AddAlert("second")
	ml.AddSystem("third")

	recent := ml.RecentMessages(2)
	require.Len(t, recent, 2)
	assert.Equal(t, ColoredMessage{Text: "third", Type: MessageTypeSystem}, recent[0])
	assert.Equal(t, ColoredMessage{Text: "second", Type: MessageTypeAlert}, recent[1])

	assert.Len(t, ml.RecentMessages(10), 3)
}

func TestMessageLog_Truncates(t *testing.T) {
	ml := NewMessageLog()
	ml.MaxMessages = 3
	for i := 0; i < 5; i++ {
		ml.Add(fmt.Sprintf("msg %d", i))
	}

	require.Len(t, ml.Messages, 3)
	assert.Equal(t, "msg 2", ml.Messages[0].Text)
	assert.Equal(t, "msg 4", ml.RecentMessages(1)[0].Text)

	ml.Clear()
	assert.Empty(t, ml.RecentMessages(1))
}

func TestColoredMessage_GetColor(t *testing.T) {
	assert.NotEqual(t,
		ColoredMessage{Type: MessageTypeAlert}.GetColor(),
		ColoredMessage{Type: MessageTypeNormal}.GetColor())
	assert.Equal(t, uint8(255), ColoredMessage{Type: MessageTypeEnvironment}.GetColor().A)
}
