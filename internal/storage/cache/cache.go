package cache

import (
	"sync"

	"github.com/meleongg/flashcard-backend/internal/models"
)

// Cache keeps small per-user state in memory: the settings row (read on
// almost every request) and the most recently dealt quiz deck.
type Cache struct {
	mu       sync.Mutex
	settings map[string]models.UserSettings
	decks    map[string][]models.QuizCard
}

func NewCache() *Cache {
	return &Cache{
		settings: make(map[string]models.UserSettings),
		decks:    make(map[string][]models.QuizCard),
	}
}

func (c *Cache) SetSettings(userID string, settings models.UserSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings[userID] = settings
}

func (c *Cache) Settings(userID string) (models.UserSettings, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	settings, exists := c.settings[userID]
	return settings, exists
}

func (c *Cache) DeleteSettings(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.settings, userID)
}

func (c *Cache) SetDeck(userID string, deck []models.QuizCard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decks[userID] = deck
}

func (c *Cache) Deck(userID string) ([]models.QuizCard, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	deck, exists := c.decks[userID]
	return deck, exists
}

func (c *Cache) DeleteDeck(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.decks, userID)
}

// DeleteUser drops everything cached for the user. Called on account
// deletion.
func (c *Cache) DeleteUser(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.settings, userID)
	delete(c.decks, userID)
}
