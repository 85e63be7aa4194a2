// Package client membungkus REST API backend udoo. Semua respons memakai
// amplop seragam {status, message, data}; kegagalan HTTP maupun status=false
// dipetakan ke *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
)

const requestTimeout = 10 * time.Second

// Client adalah klien HTTP untuk API backend.
type Client struct {
	baseURL string
	http    *http.Client
	group   singleflight.Group
}

// New membuat Client baru. baseURL menunjuk ke prefix API backend,
// misalnya "http://127.0.0.1:8000/api".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// APIError membawa status HTTP dan pesan dari amplop respons backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// envelope adalah bentuk seragam respons backend.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call mengirim satu permintaan dan membongkar amplopnya. Jika out tidak nil,
// field data amplop di-unmarshal ke sana.
func (c *Client) call(ctx context.Context, token, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	// Respons yang bukan JSON dibiarkan sebagai amplop kosong; pesan
	// fallback diambil dari baris status HTTP.
	var env envelope
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = res.Status
		}
		return &APIError{StatusCode: res.StatusCode, Message: msg}
	}
	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = "permintaan gagal"
		}
		return &APIError{StatusCode: res.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// mutate menjalankan fn di bawah kunci in-flight: dua mutasi identik yang
// menyusul sebelum yang pertama selesai (double-click) berbagi satu
// permintaan alih-alih mengirim dua tulisan duplikat.
func (c *Client) mutate(key string, fn func() error) error {
	_, err, _ := c.group.Do(key, func() (any, error) {
		return nil, fn()
	})
	return err
}

// Ping memeriksa apakah backend dapat dijangkau di level transport.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}
