package engine

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// maxLineSize bounds a single SMS line in line-oriented input.
const maxLineSize = 64 * 1024

// Message is one SMS body waiting to be imported.
type Message struct {
	ReceivedAt time.Time `json:"receivedAt"`
	Text       string    `json:"text"`
}

// ReadMessages reads import input. A JSON array holds either strings or
// {"text", "receivedAt"} objects; anything else is read as one SMS per line.
// Blank lines and blank texts are skipped.
func ReadMessages(r io.Reader) ([]Message, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return decodeJSON(trimmed)
	}
	return scanLines(data)
}

func decodeJSON(data []byte) ([]Message, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode JSON messages: %w", err)
	}

	messages := make([]Message, 0, len(raw))
	for i, item := range raw {
		var msg Message
		if len(item) > 0 && item[0] == '"' {
			if err := json.Unmarshal(item, &msg.Text); err != nil {
				return nil, fmt.Errorf("message %d: %w", i, err)
			}
		} else if err := json.Unmarshal(item, &msg); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}

		if strings.TrimSpace(msg.Text) == "" {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func scanLines(data []byte) ([]Message, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var messages []Message
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		messages = append(messages, Message{Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan messages: %w", err)
	}
	return messages, nil
}
