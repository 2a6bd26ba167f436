// services/chat.go
package services

import (
	"context"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const assistantSystemPrompt = "You are the virtual assistant of a consulting firm. " +
	"Answer questions about the firm's services, the booking process and pricing. " +
	"Be concise and professional. Answer in the language of the question. " +
	"If asked about anything unrelated to the firm, politely decline."

// ChatUnavailableMessage is returned when no LLM key is configured.
const ChatUnavailableMessage = "The assistant is currently unavailable. Please use the contact form and we will get back to you."

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatAvailable reports whether the hosted LLM is configured.
func ChatAvailable() bool {
	return os.Getenv("GROQ_API_KEY") != ""
}

// ChatReply forwards the conversation to the Groq-hosted model through its
// OpenAI-compatible API.
func ChatReply(ctx context.Context, message string, history []ChatMessage) (string, error) {
	cfg := openai.DefaultConfig(os.Getenv("GROQ_API_KEY"))
	cfg.BaseURL = os.Getenv("GROQ_BASE_URL")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai/v1"
	}

	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: assistantSystemPrompt},
	}
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	client := openai.NewClientWithConfig(cfg)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   512,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return ChatUnavailableMessage, nil
	}
	return resp.Choices[0].Message.Content, nil
}
