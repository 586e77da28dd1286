// Package graphql is a small GraphQL-over-HTTP client for the managed notes
// backend. One call is one POST; there is no retry.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config GraphQL 端点配置
type Config struct {
	Endpoint string `yaml:"endpoint" default:"http://127.0.0.1:9100/graphql"`
	// APIKey 通过 x-api-key 请求头发送
	APIKey string `yaml:"api-key"`
	// AuthToken 不为空时通过 Authorization: Bearer 发送
	AuthToken string `yaml:"auth-token"`
	// Timeout 单次请求超时，支持 10s、1m
	Timeout string `yaml:"timeout" default:"30s"`
}

// Request 一次 GraphQL 请求
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// data stays undecoded until the caller's type is known
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors Errors          `json:"errors"`
}

// Error GraphQL 响应中的单条错误
type Error struct {
	Message   string        `json:"message"`
	Path      []interface{} `json:"path,omitempty"`
	ErrorType string        `json:"errorType,omitempty"`
}

// Errors is returned when the response carries a non-empty errors array.
type Errors []Error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// StatusError 非 2xx 响应
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("graphql: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client GraphQL 客户端
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *zap.Logger
}

// Option 配置选项函数类型
type Option func(*Client)

// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient 替换默认的 http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient 创建 GraphQL 客户端
func NewClient(cfg Config, opts ...Option) *Client {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint 返回配置的端点地址
func (c *Client) Endpoint() string {
	return c.config.Endpoint
}

// Do 发送请求，并把 data 解码到 out（out 为 nil 时丢弃）
func (c *Client) Do(ctx context.Context, req *Request, out interface{}) error {
	body, err := sonic.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "graphql: encode request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "graphql: build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.config.APIKey != "" {
		httpReq.Header.Set("x-api-key", c.config.APIKey)
	}
	if c.config.AuthToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.AuthToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "graphql: %s", req.OperationName)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "graphql: %s read body", req.OperationName)
	}

	c.logger.Debug("graphql call",
		zap.String("operation", req.OperationName),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(raw), 512)}
	}

	var decoded response
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return errors.Wrapf(err, "graphql: %s decode response", req.OperationName)
	}
	if len(decoded.Errors) > 0 {
		return decoded.Errors
	}
	if out == nil || len(decoded.Data) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(decoded.Data, out); err != nil {
		return errors.Wrapf(err, "graphql: %s decode data", req.OperationName)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
