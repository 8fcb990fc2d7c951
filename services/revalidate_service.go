package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/augie-sif/sif-backend/config"
)

var revalidateClient = &http.Client{Timeout: 5 * time.Second}

// RevalidatePages signals the rendering frontend to drop its cached output
// for a page category and identifier. Failures are logged only; stale
// content is preferable to a failed mutation.
func RevalidatePages(page, id string) {
	endpoint := config.GetEnv("REVALIDATE_URL", "")
	if endpoint == "" {
		return
	}

	body, err := json.Marshal(map[string]string{"page": page, "id": id})
	if err != nil {
		log.Printf("⚠️ Failed to encode revalidation payload: %v", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("⚠️ Failed to build revalidation request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Revalidate-Secret", config.GetEnv("REVALIDATE_SECRET", ""))

	resp, err := revalidateClient.Do(req)
	if err != nil {
		log.Printf("⚠️ Failed to revalidate %s/%s: %v", page, id, err)
		return
	}
	resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("⚠️ Revalidation for %s/%s returned status %d", page, id, resp.StatusCode)
	}
}
