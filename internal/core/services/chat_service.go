package services

import "github.com/smartsolv/mindmate-engine/internal/core/domain"

// ChatService wraps the canned keyword responder. No state, no
// intelligence.
type ChatService struct{}

func NewChatService() *ChatService {
	return &ChatService{}
}

func (s *ChatService) Greeting(mood string) string {
	return domain.ChatGreeting(mood)
}

func (s *ChatService) Reply(message string) string {
	return domain.ChatReply(message)
}
