package net

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mazedash/client/internal/netcfg"
	"mazedash/shared/protocol"
)

// getBaseURL returns the API base URL
func getBaseURL() string {
	return netcfg.APIBase
}

// apiError turns an error body into a readable message. The server
// sends {"error": "..."} on failures; fall back to the raw body.
func apiError(status int, body []byte) error {
	var resp protocol.ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return fmt.Errorf("HTTP %d: %s", status, resp.Error)
	}
	return fmt.Errorf("HTTP %d: %s", status, string(body))
}

// GetJSON performs a GET request and decodes the JSON response
func GetJSON[T any](path string) (T, error) {
	var result T

	url := getBaseURL() + path
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return result, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, err
	}
	if resp.StatusCode != http.StatusOK {
		return result, apiError(resp.StatusCode, body)
	}

	err = json.Unmarshal(body, &result)
	return result, err
}

// PostJSON performs a POST request with JSON body and decodes the JSON response
func PostJSON[Req any, Res any](body Req, path string) (Res, error) {
	var result Res

	jsonData, err := json.Marshal(body)
	if err != nil {
		return result, err
	}

	url := getBaseURL() + path
	req, err := http.NewRequest("POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return result, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return result, apiError(resp.StatusCode, respBody)
	}

	err = json.Unmarshal(respBody, &result)
	return result, err
}
