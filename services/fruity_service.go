package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// FruitNutritions carries the per-100g nutrition facts from the Fruityvice
// response.
type FruitNutritions struct {
	Calories      float64 `json:"calories"`
	Fat           float64 `json:"fat"`
	Sugar         float64 `json:"sugar"`
	Carbohydrates float64 `json:"carbohydrates"`
	Protein       float64 `json:"protein"`
}

// FruitInfo is the Fruityvice fruit record.
type FruitInfo struct {
	Name       string          `json:"name"`
	ID         int             `json:"id"`
	Family     string          `json:"family"`
	Order      string          `json:"order"`
	Genus      string          `json:"genus"`
	Nutritions FruitNutritions `json:"nutritions"`
}

type FruityService struct {
	baseURL string
	client  *http.Client
}

// NewFruityService reads FRUITY_BASE_URL (defaults to the public Fruityvice
// instance) and prepares the HTTP client.
func NewFruityService() *FruityService {
	base := os.Getenv("FRUITY_BASE_URL")
	if base == "" {
		base = "https://www.fruityvice.com"
	}
	return &FruityService{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetFruit looks a fruit up by name. Unknown fruits, non-2xx responses and
// undecodable bodies all come back as (nil, nil): the lookup degrades to
// "not found" rather than failing the caller. Only transport errors are
// reported as errors.
func (s *FruityService) GetFruit(name string) (*FruitInfo, error) {
	u := fmt.Sprintf("%s/api/fruit/%s", s.baseURL, url.PathEscape(name))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call fruit API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil
	}

	var fruit FruitInfo
	if err := json.NewDecoder(resp.Body).Decode(&fruit); err != nil {
		return nil, nil
	}
	return &fruit, nil
}
