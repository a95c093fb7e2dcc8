package http_client

import (
	"log"
	"net/http"
	"time"
)

// LoggedClient — HTTP-клиент с логированием исходящих запросов.
// Тела не логируются: в запросах пароли и содержимое файлов.
type LoggedClient struct {
	*http.Client
}

func NewLoggedClient(timeout time.Duration) *LoggedClient {
	return &LoggedClient{
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *LoggedClient) Do(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	resp, err := c.Client.Do(req)
	if err != nil {
		log.Printf("HTTP %s %s failed after %dms: %v",
			req.Method, req.URL, time.Since(startTime).Milliseconds(), err)
		return nil, err
	}

	log.Printf("HTTP %s %s -> %d (%dms)",
		req.Method, req.URL, resp.StatusCode, time.Since(startTime).Milliseconds())
	return resp, nil
}
