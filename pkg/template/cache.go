package template

import (
	"strings"
	"sync"

	"farmassist/entities"
	"farmassist/pkg/template/repository"
)

// Cache is a read-through cache over the template store. Templates change
// rarely (admin writes only), so lookups from the resolution path hit memory;
// every admin write calls Invalidate.
type Cache struct {
	mu    sync.RWMutex
	repo  repository.TemplateRepository
	byKey map[string]*entities.IssueTemplate
}

func NewCache(repo repository.TemplateRepository) *Cache {
	return &Cache{repo: repo, byKey: map[string]*entities.IssueTemplate{}}
}

func (c *Cache) FindByType(issueType string) (*entities.IssueTemplate, error) {
	key := strings.ToLower(strings.TrimSpace(issueType))

	c.mu.RLock()
	if t, ok := c.byKey[key]; ok {
		c.mu.RUnlock()
		return t, nil
	}
	c.mu.RUnlock()

	t, err := c.repo.FindByType(issueType)
	if err != nil {
		// misses and store errors are not cached
		return nil, err
	}

	c.mu.Lock()
	c.byKey[key] = t
	c.mu.Unlock()
	return t, nil
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.byKey = map[string]*entities.IssueTemplate{}
	c.mu.Unlock()
}
