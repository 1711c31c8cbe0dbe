// Package backend implements the REST client for the booking backend
// (hotels, bookings, complaints resources). Reads are retried with backoff;
// writes are sent exactly once, since a replayed POST could double-book and
// every failure is retried by the user, not the client.
package backend

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"jizzakh_hotels/internal/adapters/observability"
	"jizzakh_hotels/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) *Client {
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// ---- Public API (one method per backend resource operation) ----

func (c *Client) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	var out []domain.Hotel
	if err := c.get(ctx, "hotels", c.base+"/hotels", &out); err != nil {
		return nil, err
	}
	for _, h := range out {
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("backend: invalid hotel payload: %w", err)
		}
	}
	return out, nil
}

func (c *Client) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	var out domain.Hotel
	if err := c.get(ctx, "hotel", fmt.Sprintf("%s/hotels/%d", c.base, id), &out); err != nil {
		return domain.Hotel{}, err
	}
	if err := out.Validate(); err != nil {
		return domain.Hotel{}, fmt.Errorf("backend: invalid hotel payload: %w", err)
	}
	return out, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := c.get(ctx, "bookings", c.base+"/bookings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	var out domain.Booking
	if err := c.write(ctx, http.MethodPost, "bookings", c.base+"/bookings", b, &out); err != nil {
		return domain.Booking{}, err
	}
	return out, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id string, p domain.BookingPatch) (domain.Booking, error) {
	var out domain.Booking
	url := c.base + "/bookings/" + id
	if err := c.write(ctx, http.MethodPatch, "booking", url, p, &out); err != nil {
		return domain.Booking{}, err
	}
	return out, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.write(ctx, http.MethodDelete, "booking", c.base+"/bookings/"+id, nil, nil)
}

// CreateComplaint is fire-and-forget; the response body is discarded.
func (c *Client) CreateComplaint(ctx context.Context, cm domain.Complaint) error {
	return c.write(ctx, http.MethodPost, "complaints", c.base+"/complaints", cm, nil)
}

// ---- Internals ----

var (
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrForbidden    = errors.New("backend: forbidden")
)

// get performs a GET with client-side rate limiting, retries, and JSON decode
// into out. Retries on 429 and transient 5xx, honoring Retry-After.
func (c *Client) get(ctx context.Context, endpoint, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		req, err := c.newRequest(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			observability.ObserveBackend(endpoint, http.MethodGet, 0, time.Since(start))
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveBackend(endpoint, http.MethodGet, resp.StatusCode, time.Since(start))

		retryable, err := consume(resp, out)
		if err == nil {
			return nil
		}
		if !retryable {
			return err
		}
		lastErr = err
		wait := retryAfter(resp)
		if wait == 0 {
			wait = backoff(i)
		}
		if i < 3 && sleepCtx(ctx, wait) {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return lastErr
	}
	return lastErr
}

// write performs a single-attempt POST/PATCH/DELETE with a JSON body.
func (c *Client) write(ctx context.Context, method, endpoint, url string, body, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := c.newRequest(ctx, method, url, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		observability.ObserveBackend(endpoint, method, 0, time.Since(start))
		return err
	}
	observability.ObserveBackend(endpoint, method, resp.StatusCode, time.Since(start))

	_, err = consume(resp, out)
	return err
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if c.key != "" {
		req.Header.Set("X-API-Key", c.key)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "jizzakh-hotels/1.0")
	return req, nil
}

// consume maps the response to (retryable, error) and decodes a success body
// into out when requested. Always closes the body.
func consume(resp *http.Response, out any) (bool, error) {
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return false, nil
		}
		return false, json.NewDecoder(resp.Body).Decode(out)

	case http.StatusNoContent:
		io.Copy(io.Discard, resp.Body)
		return false, nil

	case http.StatusNotFound:
		return false, domain.ErrNotFound

	case http.StatusUnauthorized:
		return false, ErrUnauthorized

	case http.StatusForbidden:
		return false, ErrForbidden

	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		io.Copy(io.Discard, resp.Body)
		return true, fmt.Errorf("remote %d", resp.StatusCode)

	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return false, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// i = retry attempt (0,1,2,...). Base doubles each attempt (200ms, 400ms, 800ms...),
// with up to +50% random jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
