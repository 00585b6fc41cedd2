// pkg/ai/hf_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type huggingFace struct {
	endpoint string
	key      string
	timeout  time.Duration
}

// NewHuggingFace talks to a text-generation inference endpoint. The public
// endpoint works without a key; when key is set it is sent as a Bearer token.
func NewHuggingFace(endpoint, key string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &huggingFace{endpoint: endpoint, key: key, timeout: timeout}
}

func (c *huggingFace) GenerateSolution(in SolutionRequest) (string, error) {
	reqBody := map[string]any{
		"inputs": renderSolutionPrompt(in),
		"parameters": map[string]any{
			"max_new_tokens":   300,
			"temperature":      0.7,
			"return_full_text": false,
		},
	}

	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: c.timeout}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/"), bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("inference status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	text, err := extractGeneratedText(raw)
	if err != nil {
		return "", err
	}
	return text, nil
}

// extractGeneratedText tolerates the two response shapes the endpoint is
// known to return: [{"generated_text": ...}] and {"generated_text": ...}.
func extractGeneratedText(raw []byte) (string, error) {
	var arr []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(raw, &arr); err == nil && len(arr) > 0 {
		if t := strings.TrimSpace(arr[0].GeneratedText); t != "" {
			return t, nil
		}
	}
	var obj struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if t := strings.TrimSpace(obj.GeneratedText); t != "" {
			return t, nil
		}
	}
	return "", fmt.Errorf("no generated_text in response: %s", truncate(string(raw), 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func renderSolutionPrompt(in SolutionRequest) string {
	crop := in.CropName
	if crop == "" {
		crop = "a crop"
	}
	location := in.Location
	if location == "" {
		location = "India"
	}
	details := in.Details
	if details == "" {
		details = "No additional details provided"
	}
	week := "unknown"
	if in.Week > 0 {
		week = fmt.Sprintf("%d", in.Week)
	}

	prompt := fmt.Sprintf(`You are an expert agricultural advisor. A farmer is growing %s in %s during the %s season.

They are currently in Week %s of their crop timeline and have reported the following issue:

Issue Type: %s
Details: %s

Please provide a specific, actionable solution considering the local conditions in %s. Include:
1. Immediate steps to take (consider local climate and soil conditions)
2. Recommended products or treatments available locally
3. Prevention tips for the future specific to this region
4. Expected timeline for resolution

Keep the response concise (3-4 sentences) and practical for farmers in %s.`,
		crop, location, in.Season, week, in.IssueType, details, location, location)

	if in.KBContext != "" {
		prompt += "\n\nLocal advisory notes:\n" + in.KBContext
	}
	return prompt
}
