package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MockETag is the quoted entity tag the fake transport returns for every object.
const MockETag = `"etag123"`

// NewMockForTests returns a *Store backed by an in-memory fake HTTP transport
// holding objects (key to body). It answers the HeadObject and GetObject calls
// the loader makes; any other request gets 501.
func NewMockForTests(objects map[string]string) *Store {
	rt := &mockRoundTripperLite{state: make(map[string][]byte, len(objects))}
	for k, v := range objects {
		rt.state[k] = []byte(v)
	}
	cfg, _ := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(DefaultRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
	)
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: rt}
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String("https://mock.s3.local")
	})
	return &Store{client: client, bucket: "mock-bucket"}
}

type mockRoundTripperLite struct {
	mu    sync.Mutex
	state map[string][]byte
}

func (m *mockRoundTripperLite) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}
	if req.Method != http.MethodHead && req.Method != http.MethodGet {
		return emptyResponse(http.StatusNotImplemented), nil
	}
	body, ok := m.state[key]
	if !ok {
		return emptyResponse(http.StatusNotFound), nil
	}
	resp := emptyResponse(http.StatusOK)
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
	resp.Header.Set("Content-Type", "text/plain")
	resp.Header.Set("ETag", MockETag)
	resp.Header.Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	if req.Method == http.MethodGet {
		resp.Body = io.NopCloser(bytes.NewReader(body))
		resp.ContentLength = int64(len(body))
	}
	return resp, nil
}

func emptyResponse(status int) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{}}
}
