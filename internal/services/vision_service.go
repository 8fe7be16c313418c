package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"time"
)

// VisionService identifies a produce item from a photo by calling a
// configured classifier endpoint. When no endpoint is configured it falls
// back to a deterministic local guess so the demo works offline.
type VisionService struct {
	endpoint string
	client   *http.Client
}

// ProductIdentification is the classifier's answer for one image.
type ProductIdentification struct {
	Name    string `json:"name"`
	Quality string `json:"quality"`
}

// NewVisionService creates a new vision service
func NewVisionService(endpoint string) *VisionService {
	return &VisionService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

var fallbackNames = []string{"Tomato", "Spinach", "Mango", "Banana", "Carrot", "Avocado"}
var fallbackQualities = []string{"Grade A", "Grade B", "Premium"}

// IdentifyProductFromImage classifies the image bytes. imageData is the raw
// upload, typically JPEG.
func (s *VisionService) IdentifyProductFromImage(ctx context.Context, imageData []byte) (*ProductIdentification, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}

	if s.endpoint == "" {
		return s.localGuess(imageData), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var result ProductIdentification
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}
	if result.Name == "" {
		return nil, fmt.Errorf("classifier returned no product name")
	}
	return &result, nil
}

// localGuess hashes the image so the same photo always yields the same
// answer.
func (s *VisionService) localGuess(imageData []byte) *ProductIdentification {
	h := fnv.New32a()
	h.Write(imageData)
	sum := h.Sum32()
	return &ProductIdentification{
		Name:    fallbackNames[sum%uint32(len(fallbackNames))],
		Quality: fallbackQualities[(sum/7)%uint32(len(fallbackQualities))],
	}
}
