package cache

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"time"
)

// Transport serves GET responses from a Store, falling through to the
// base transport on a miss. Only 200 responses are cached; the cache
// key is the full request URL. Cache errors log and fall back to a
// live fetch rather than failing the request.
type Transport struct {
	Store *Store
	TTL   time.Duration
	Base  http.RoundTripper
}

// NewTransport creates a caching transport over http.DefaultTransport.
func NewTransport(store *Store, ttl time.Duration) *Transport {
	return &Transport{Store: store, TTL: ttl, Base: http.DefaultTransport}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.base().RoundTrip(req)
	}

	key := req.URL.String()
	if body, ok, err := t.Store.Get(key); err != nil {
		log.Printf("Cache error: %v", err)
	} else if ok {
		return &http.Response{
			Status:        "200 OK",
			StatusCode:    http.StatusOK,
			Proto:         "HTTP/1.1",
			ProtoMajor:    1,
			ProtoMinor:    1,
			Header:        make(http.Header),
			Body:          io.NopCloser(bytes.NewReader(body)),
			ContentLength: int64(len(body)),
			Request:       req,
		}, nil
	}

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	if err := t.Store.Set(key, body, t.TTL); err != nil {
		log.Printf("Failed to update cache: %v", err)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
