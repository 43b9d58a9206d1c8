package client

import (
	"net/http"
	"time"

	"github.com/meleongg/flashcard-backend/internal/config"
)

type Clients struct {
	*OpenAIAPI
	*DictionaryAPI
}

// InitClients constructs every external NLP collaborator. Clients share one
// HTTP client and are passed around explicitly; nothing here is a package
// singleton.
func InitClients(cfg config.OpenAIConfig) Clients {
	httpClient := &http.Client{Timeout: 15 * time.Second}

	return Clients{
		OpenAIAPI:     NewOpenAIAPI(cfg, httpClient),
		DictionaryAPI: NewDictionaryAPI(httpClient),
	}
}
