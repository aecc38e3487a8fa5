package openai

import "github.com/leofalp/sintaxis/providers/ai"

/*
	OPENAI API - REQUEST TYPES
*/

// chatCompletionRequest represents the request to OpenAI's chat completions endpoint.
type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    *float64        `json:"temperature,omitempty"`
	TopP           *float64        `json:"top_p,omitempty"`
	MaxTokens      *int            `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"` // "text" | "json_object"
}

/*
	OPENAI API - RESPONSE TYPES
*/

// chatCompletionResponse represents the response from the chat completions endpoint.
type chatCompletionResponse struct {
	Id      string   `json:"id"`
	Model   string   `json:"model"`
	Created int64    `json:"created"`
	Choices []choice `json:"choices"`
	Usage   *usage   `json:"usage,omitempty"`
}

type choice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

/*
	CONVERSION
*/

// requestFromGeneric converts an ai.ChatRequest to the OpenAI wire format.
// The system prompt becomes the first message with role "system".
func requestFromGeneric(request ai.ChatRequest) chatCompletionRequest {
	req := chatCompletionRequest{Model: request.Model}
	if req.Model == "" {
		req.Model = defaultModel
	}

	if request.SystemPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{Role: "system", Content: request.SystemPrompt})
	}

	for _, msg := range request.Messages {
		req.Messages = append(req.Messages, chatMessage{Role: string(msg.Role), Content: msg.Content})
	}

	if request.ResponseFormat != nil && request.ResponseFormat.Type != "" {
		req.ResponseFormat = &responseFormat{Type: request.ResponseFormat.Type}
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.Temperature > 0 {
			t := float64(cfg.Temperature)
			req.Temperature = &t
		}
		if cfg.TopP > 0 {
			p := float64(cfg.TopP)
			req.TopP = &p
		}
		if cfg.MaxOutputTokens > 0 {
			req.MaxTokens = &cfg.MaxOutputTokens
		}
	}

	return req
}

// responseToGeneric converts an OpenAI chat completion response to ai.ChatResponse.
func responseToGeneric(resp chatCompletionResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      resp.Id,
		Model:   resp.Model,
		Created: resp.Created,
	}

	if len(resp.Choices) > 0 {
		result.Content = resp.Choices[0].Message.Content
		result.FinishReason = resp.Choices[0].FinishReason
	}

	if resp.Usage != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	return result
}
