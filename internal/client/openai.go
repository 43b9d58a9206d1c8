package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/meleongg/flashcard-backend/internal/config"
)

// OpenAIAPI calls the chat-completions endpoint for translation and
// example-sentence generation.
type OpenAIAPI struct {
	apiKey      string
	apiURL      string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
}

func NewOpenAIAPI(cfg config.OpenAIConfig, httpClient *http.Client) *OpenAIAPI {
	return &OpenAIAPI{
		apiKey:      cfg.APIKey,
		apiURL:      cfg.BaseURL + "/chat/completions",
		model:       cfg.Model,
		maxTokens:   100,
		temperature: 0.7,
		client:      httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (o *OpenAIAPI) complete(ctx context.Context, temperature float64, messages []chatMessage) (string, error) {
	request := chatRequest{
		Model:       o.model,
		Messages:    messages,
		MaxTokens:   o.maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("openai API error: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// Translate returns the bare translation of word into targetLang.
func (o *OpenAIAPI) Translate(ctx context.Context, word, sourceLang, targetLang string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: "You are a professional translator. Provide accurate translations only."},
		{Role: "user", Content: fmt.Sprintf(
			"Translate the word '%s' from language code %s to language code %s. Return ONLY the translation with no explanations, notes, quotes or formatting.",
			word, sourceLang, targetLang)},
	}

	// Low temperature keeps translations stable across requests.
	translation, err := o.complete(ctx, 0.2, messages)
	if err != nil {
		return "", err
	}

	return strings.Trim(translation, `"'`), nil
}

// ExampleAndNotes asks for one example sentence plus a one-line grammar note
// in an "Example: ... / Note: ..." layout and parses both out.
func (o *OpenAIAPI) ExampleAndNotes(ctx context.Context, word string) (string, string, error) {
	messages := []chatMessage{
		{Role: "system", Content: "You're an assistant helping language learners."},
		{Role: "user", Content: fmt.Sprintf(
			"Provide:\n1. A short, simple sentence using the word '%s'.\n2. A one-sentence grammar note explaining how the word functions in the sentence.\n\nRespond in the format:\nExample: ...\nNote: ...",
			word)},
	}

	content, err := o.complete(ctx, o.temperature, messages)
	if err != nil {
		return "", "", err
	}

	var example, note string
	for _, line := range strings.Split(content, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "example:"):
			example = strings.TrimSpace(line[len("example:"):])
		case strings.HasPrefix(lower, "note:"):
			note = strings.TrimSpace(line[len("note:"):])
		}
	}

	if example == "" && note == "" {
		return "", "", fmt.Errorf("unexpected completion format: %q", content)
	}

	return example, note, nil
}
