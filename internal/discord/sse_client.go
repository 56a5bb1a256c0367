package discord

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Owennied/HimmyGames/internal/sse"
)

var errStreamClosed = errors.New("stream closed unexpectedly")

// SSEEvent is one farm event read off the stream
type SSEEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// SSEEventHandler reacts to one event type
type SSEEventHandler func(event SSEEvent) error

// SSEClient follows the farm API's event stream, reconnecting until stopped
type SSEClient struct {
	streamURL  string
	apiKey     string
	httpClient *http.Client

	mu       sync.RWMutex
	handlers map[string][]SSEEventHandler
	lastID   string

	connected atomic.Bool
	shutdown  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewSSEClient builds a client for the event stream under baseURL. An
// empty eventTypes subscribes to everything.
func NewSSEClient(baseURL, apiKey string, eventTypes []string) *SSEClient {
	streamURL := baseURL + apiPrefix + "/events"
	if len(eventTypes) > 0 {
		q := url.Values{}
		q.Set(sse.QueryParamTypes, strings.Join(eventTypes, ","))
		streamURL += "?" + q.Encode()
	}

	return &SSEClient{
		streamURL:  streamURL,
		apiKey:     apiKey,
		httpClient: &http.Client{}, // streams never time out
		handlers:   make(map[string][]SSEEventHandler),
		shutdown:   make(chan struct{}),
	}
}

// OnEvent adds a handler for eventType
func (c *SSEClient) OnEvent(eventType string, handler SSEEventHandler) {
	c.mu.Lock()
	c.handlers[eventType] = append(c.handlers[eventType], handler)
	c.mu.Unlock()
}

// Start follows the stream in the background until Stop or ctx ends
func (c *SSEClient) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx)
		slog.Info(sseLogMsgClientStopped)
	}()
}

// Stop ends the stream and waits for the reader to exit. Safe to call twice.
func (c *SSEClient) Stop() {
	c.stopOnce.Do(func() { close(c.shutdown) })
	c.wg.Wait()
}

// IsConnected reports whether the stream is currently open
func (c *SSEClient) IsConnected() bool {
	return c.connected.Load()
}

func (c *SSEClient) stopped(ctx context.Context) bool {
	select {
	case <-c.shutdown:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (c *SSEClient) run(ctx context.Context) {
	var delay reconnectBackoff

	for !c.stopped(ctx) {
		err := c.follow(ctx)
		if c.connected.Swap(false) {
			delay = reconnectBackoff{}
		}
		if err == nil {
			continue
		}

		wait := delay.next()
		slog.Warn(sseLogMsgConnectionFailed,
			"error", err,
			"backoff", wait,
			"consecutive_failures", delay.failures)

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-c.shutdown:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

// follow holds one connection open. A clean shutdown returns nil.
func (c *SSEClient) follow(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.streamURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	c.mu.RLock()
	if c.lastID != "" {
		req.Header.Set(sse.HeaderLastEventID, c.lastID)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	c.connected.Store(true)
	slog.Info(sseLogMsgClientConnected, "url", c.streamURL)

	return c.readEvents(ctx, resp.Body)
}

// readEvents parses frames until the stream ends, then reports errStreamClosed
func (c *SSEClient) readEvents(ctx context.Context, body io.Reader) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, sseBufferSize), sseBufferSize)

	var f frame
	for scanner.Scan() {
		if c.stopped(ctx) {
			return ctx.Err()
		}

		line := scanner.Text()
		if line != "" {
			f.add(line)
			continue
		}
		if f.ready() {
			c.dispatch(f)
		}
		f = frame{}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream: %w", err)
	}
	return errStreamClosed
}

func (c *SSEClient) dispatch(f frame) {
	if f.id != "" {
		c.mu.Lock()
		c.lastID = f.id
		c.mu.Unlock()
	}

	switch f.event {
	case "", sse.EventTypeKeepalive, sse.EventTypeConnected:
		return
	}

	var event SSEEvent
	if err := json.Unmarshal([]byte(f.payload()), &event); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "event_type", f.event)
		return
	}
	event.Type = f.event
	if f.id != "" {
		event.ID = f.id
	}

	c.mu.RLock()
	handlers := c.handlers[event.Type]
	c.mu.RUnlock()

	for _, handle := range handlers {
		if err := handle(event); err != nil {
			slog.Error(sseLogMsgHandlerError, "event_type", event.Type, "error", err)
		}
	}
}

// frame accumulates the fields of one server-sent event
type frame struct {
	id    string
	event string
	data  []string
}

func (f *frame) add(line string) {
	if strings.HasPrefix(line, ":") {
		return
	}
	name, value, _ := strings.Cut(line, ":")
	value = strings.TrimPrefix(value, " ")

	switch name {
	case "id":
		f.id = value
	case "event":
		f.event = value
	case "data":
		f.data = append(f.data, value)
	}
}

func (f *frame) ready() bool {
	return len(f.data) > 0
}

func (f *frame) payload() string {
	return strings.Join(f.data, "\n")
}

// reconnectBackoff doubles the wait after every failed connection
type reconnectBackoff struct {
	wait     time.Duration
	failures int
}

func (b *reconnectBackoff) next() time.Duration {
	b.failures++
	if b.wait == 0 {
		b.wait = sseInitialBackoff
		return b.wait
	}
	b.wait = time.Duration(float64(b.wait) * sseBackoffMultiplier)
	if b.wait > sseMaxBackoff {
		b.wait = sseMaxBackoff
	}
	return b.wait
}
