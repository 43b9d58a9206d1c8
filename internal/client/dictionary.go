package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/meleongg/flashcard-backend/internal/models"
)

// DictionaryAPI looks up phonetics and part-of-speech tags from the Free
// Dictionary API.
type DictionaryAPI struct {
	baseURL string
	client  *http.Client
}

func NewDictionaryAPI(httpClient *http.Client) *DictionaryAPI {
	return &DictionaryAPI{
		baseURL: "https://api.dictionaryapi.dev/api/v2/entries/en/",
		client:  httpClient,
	}
}

func (d *DictionaryAPI) WordInfo(ctx context.Context, word string) (models.WordInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+url.PathEscape(word), nil)
	if err != nil {
		return models.WordInfo{}, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return models.WordInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WordInfo{}, fmt.Errorf("dictionary lookup for %q returned status %d", word, resp.StatusCode)
	}

	var entries []models.DictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return models.WordInfo{}, fmt.Errorf("failed to decode dictionary entry for %q: %w", word, err)
	}
	if len(entries) == 0 {
		return models.WordInfo{}, fmt.Errorf("no dictionary entry for %q", word)
	}

	entry := entries[0]
	info := models.WordInfo{Phonetic: entry.Phonetic}
	if info.Phonetic == "" {
		for _, p := range entry.Phonetics {
			if p.Text != "" {
				info.Phonetic = p.Text
				break
			}
		}
	}
	if len(entry.Meanings) > 0 {
		info.POS = entry.Meanings[0].PartOfSpeech
	}

	return info, nil
}
