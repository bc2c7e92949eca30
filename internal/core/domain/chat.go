package domain

import "strings"

// chatReplies are the canned keyword responses of the SmartSolv.AI chat
// stub. First matching keyword wins; keys are checked in a fixed order so
// replies stay deterministic.
var chatKeywordOrder = []string{
	"hello",
	"hi",
	"how are you",
	"help",
	"thanks",
	"ok",
	"advice",
	"study",
	"stressed",
	"sad",
	"happy",
	"motivation",
}

var chatReplies = map[string]string{
	"hello":       "Hey there! How can I assist you?",
	"hi":          "Hello! What can I do for you?",
	"how are you": "I'm doing great, here to help you! What's on your mind?",
	"help":        "I can help you with advice, motivation, or just chat. What do you need?",
	"thanks":      "You're welcome! Anything else I can help with?",
	"ok":          "Great! Let me know if you need anything.",
	"advice":      "Tell me what's bothering you, and I'll try to help.",
	"study":       "I can help you with study tips and strategies. What subject?",
	"stressed":    "Take a deep breath. Let's talk about what's stressing you.",
	"sad":         "I'm sorry you're feeling down. Talk to me about it.",
	"happy":       "That's wonderful! Keep that energy going!",
	"motivation":  "You've got this! What are you working towards?",
}

const chatDefaultReply = "That's interesting. Tell me more about that."

// ChatReply matches a message against the keyword table,
// case-insensitively, and falls back to the default reply.
func ChatReply(message string) string {
	lower := strings.ToLower(message)
	for _, keyword := range chatKeywordOrder {
		if strings.Contains(lower, keyword) {
			return chatReplies[keyword]
		}
	}
	return chatDefaultReply
}

// ChatGreeting is the opening bot message for a given mood.
func ChatGreeting(mood string) string {
	return "Hi! I'm SmartSolv.AI. I see you're feeling " + mood + ". How can I help you today?"
}
