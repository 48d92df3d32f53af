package services

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/wet-dev/wet/internal/types"
)

// Kakao Local API category group for food and drink places.
const foodCategoryGroupCode = "FD6"

type kakaoDocument struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	CategoryName    string `json:"category_name"`
	Phone           string `json:"phone"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	X               string `json:"x"`
	Y               string `json:"y"`
	PlaceURL        string `json:"place_url"`
}

type kakaoSearchResponse struct {
	Documents []kakaoDocument `json:"documents"`
}

// KakaoMapClient issues keyword searches against the Kakao Local API. Search
// failures degrade to an empty result list and are never surfaced to callers.
type KakaoMapClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewKakaoMapClient(apiKey, baseURL string) *KakaoMapClient {
	return &KakaoMapClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *KakaoMapClient) Search(query string) []types.Restaurant {
	if strings.TrimSpace(query) == "" {
		return []types.Restaurant{}
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL, nil)

	if err != nil {
		log.Printf("Failed to build Kakao search request: %v", err)
		return []types.Restaurant{}
	}

	params := req.URL.Query()
	params.Set("query", query)
	params.Set("category_group_code", foodCategoryGroupCode)
	req.URL.RawQuery = params.Encode()

	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.client.Do(req)

	if err != nil {
		log.Printf("Kakao search request failed: %v", err)
		return []types.Restaurant{}
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Kakao search returned status %d", resp.StatusCode)
		return []types.Restaurant{}
	}

	var body kakaoSearchResponse

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("Failed to decode Kakao search response: %v", err)
		return []types.Restaurant{}
	}

	records := make([]types.Restaurant, 0, len(body.Documents))

	for _, doc := range body.Documents {
		records = append(records, types.Restaurant{
			ID:          doc.ID,
			Name:        doc.PlaceName,
			Category:    doc.CategoryName,
			Phone:       doc.Phone,
			Address:     doc.AddressName,
			RoadAddress: doc.RoadAddressName,
			X:           doc.X,
			Y:           doc.Y,
			PlaceURL:    doc.PlaceURL,
		})
	}

	return records
}
