package systems

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instances (singletons)
var (
	globalMessageLog *MessageLog
	globalDebugLog   *MessageLog
)

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// GetDebugLog returns the global debug log instance
func GetDebugLog() *MessageLog {
	if globalDebugLog == nil {
		globalDebugLog = NewMessageLog()
	}
	return globalDebugLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddAlert adds an alert message to the log
func (ml *MessageLog) AddAlert(message string) {
	ml.AddTyped(message, MessageTypeAlert)
}

// AddSystem adds a system message to the log
func (ml *MessageLog) AddSystem(message string) {
	ml.AddTyped(message, MessageTypeSystem)
}

// AddTyped adds a message of the given type
func (ml *MessageLog) AddTyped(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}
