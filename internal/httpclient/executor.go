package httpclient

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"net/http/httptrace"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/unkn0wn-root/curseclient/internal/config"
	"github.com/unkn0wn-root/curseclient/internal/errdef"
	"github.com/unkn0wn-root/curseclient/internal/jsonval"
	"github.com/unkn0wn-root/curseclient/internal/request"
	"github.com/unkn0wn-root/curseclient/internal/telemetry"
)

// Transport performs one HTTP exchange. *http.Client satisfies it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Executor)

func WithTransport(t Transport) Option {
	return func(e *Executor) {
		if t != nil {
			e.transport = t
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithInstrumenter(i telemetry.Instrumenter) Option {
	return func(e *Executor) {
		if i != nil {
			e.tracer = i
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Executor) {
		if now != nil {
			e.now = now
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(e *Executor) {
		e.userAgent = strings.TrimSpace(ua)
	}
}

// Executor turns a request snapshot into exactly one Outcome. It never
// returns an error; every failure becomes a Failure.
type Executor struct {
	transport Transport
	logger    *slog.Logger
	tracer    telemetry.Instrumenter
	now       func() time.Time
	userAgent string
}

func New(opts ...Option) *Executor {
	e := &Executor{
		transport: NewHTTPClient(config.RequestTimeout),
		logger:    slog.New(slog.DiscardHandler),
		tracer:    telemetry.Noop(),
		now:       time.Now,
		userAgent: "curseclient",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewHTTPClient builds the client used for sends: a hard timeout over the
// whole exchange and no connection reuse, so a failed attempt is never
// silently retried on another connection.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: timeout,
		}).DialContext,
		TLSHandshakeTimeout: timeout,
		DisableKeepAlives:   true,
		MaxIdleConns:        0,
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}

func (e *Executor) Execute(ctx context.Context, snap request.Snapshot) Outcome {
	id := snap.ID()

	var payload []byte
	if strings.TrimSpace(snap.Body()) != "" {
		value, err := jsonval.ParseString(snap.Body())
		if err != nil {
			return Failure{ID: id, Message: "Invalid JSON body: " + err.Error()}
		}
		payload = value.Compact()
	}

	httpReq, err := e.buildRequest(ctx, snap, payload)
	if err != nil {
		return Failure{ID: id, Message: errdef.Message(err)}
	}

	e.logger.Debug("send request",
		"request_id", id,
		"method", string(snap.Method()),
		"url", snap.URL(),
	)

	ctx, span := e.tracer.Start(ctx, telemetry.RequestStart{RequestID: id, HTTPRequest: httpReq})
	var connected atomic.Bool
	ctx = httptrace.WithClientTrace(ctx, &httptrace.ClientTrace{
		GotConn: func(httptrace.GotConnInfo) { connected.Store(true) },
	})
	httpReq = httpReq.WithContext(ctx)

	start := e.now()
	resp, err := e.transport.Do(httpReq)
	if err != nil {
		duration := e.now().Sub(start)
		span.End(telemetry.RequestResult{Err: err, Duration: duration})
		msg := transportMessage(err, connected.Load())
		e.logger.Info("request failed",
			"request_id", id,
			"error", err.Error(),
			"duration", duration,
		)
		return Failure{ID: id, Message: msg}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	duration := e.now().Sub(start)
	if err != nil {
		wrapped := errdef.Wrap(errdef.CodeTransport, err, "read response body")
		span.End(telemetry.RequestResult{Err: wrapped, StatusCode: resp.StatusCode, Duration: duration})
		return Failure{ID: id, Message: errdef.Message(wrapped)}
	}

	body, err := decodeBody(resp.Header.Get("Content-Type"), raw)
	if err != nil {
		span.End(telemetry.RequestResult{Err: err, StatusCode: resp.StatusCode, Duration: duration})
		e.logger.Info("response decode failed",
			"request_id", id,
			"status", resp.StatusCode,
			"error", err.Error(),
		)
		return Failure{ID: id, Message: errdef.Message(err)}
	}

	span.End(telemetry.RequestResult{StatusCode: resp.StatusCode, Duration: duration})
	e.logger.Info("request completed",
		"request_id", id,
		"status", resp.StatusCode,
		"duration", duration,
	)

	return Success{
		ID:         id,
		Timestamp:  e.now(),
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
		Duration:   duration,
	}
}

func (e *Executor) buildRequest(ctx context.Context, snap request.Snapshot, payload []byte) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, string(snap.Method()), snap.URL(), body)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeTransport, err, "build request")
	}

	for _, h := range snap.Headers().Entries() {
		httpReq.Header.Set(h.Name, h.Value)
	}
	if payload != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if e.userAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", e.userAgent)
	}
	return httpReq, nil
}

// decodeBody decodes JSON when the content type mentions application/json and
// otherwise returns text decoded from the declared charset.
func decodeBody(contentType string, raw []byte) (Body, error) {
	if strings.Contains(strings.ToLower(contentType), "application/json") {
		value, err := jsonval.Parse(raw)
		if err != nil {
			return Body{}, errdef.Wrap(errdef.CodeDecode, err, "decode JSON response")
		}
		return JSONBody(value), nil
	}
	return TextBody(decodeText(contentType, raw)), nil
}

func decodeText(contentType string, raw []byte) string {
	label := ""
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		label = strings.ToLower(strings.TrimSpace(params["charset"]))
	}
	if label == "" || label == "utf-8" || label == "utf8" {
		return string(raw)
	}
	reader, err := charset.NewReaderLabel(label, bytes.NewReader(raw))
	if err != nil {
		return string(raw)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

func reasonPhrase(resp *http.Response) string {
	status := strings.TrimSpace(resp.Status)
	prefix := strconv.Itoa(resp.StatusCode)
	if reason, ok := strings.CutPrefix(status, prefix); ok {
		if reason = strings.TrimSpace(reason); reason != "" {
			return reason
		}
	}
	return http.StatusText(resp.StatusCode)
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		out[name] = strings.Join(values, ", ")
	}
	return out
}
