package store

import (
	"sort"

	apperrors "loop-social/backend/pkg/errors"
	"go.uber.org/zap"
)

// ============================================================================
// Message Operations
// ============================================================================

// MessagesForChat returns the messages exchanged between the current
// actor and the given user in either direction, timestamp ascending
func (s *Store) MessagesForChat(otherUserID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	currentID := s.currentUserID
	out := make([]Message, 0)
	for _, m := range s.messages {
		if (m.SenderID == currentID && m.ReceiverID == otherUserID) ||
			(m.SenderID == otherUserID && m.ReceiverID == currentID) {
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// SendMessage appends a new message from the current actor to the given
// receiver. Receiver existence is not checked; a message to nobody is
// harmless and simply never surfaces in any chat.
func (s *Store) SendMessage(receiverID, text string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	if cur == nil {
		return Message{}, apperrors.NewUserNotFound("current")
	}

	m := &Message{
		ID:         newID(),
		SenderID:   cur.ID,
		ReceiverID: receiverID,
		Text:       text,
		Timestamp:  now(),
	}
	s.messages = append(s.messages, m)

	s.logger.Debug("Message sent",
		zap.String("message_id", m.ID),
		zap.String("receiver_id", receiverID),
	)
	return *m, nil
}
