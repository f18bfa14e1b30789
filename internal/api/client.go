package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MorseWayne/product_page/internal/domain"
)

const (
	headerRequestID = "X-Request-ID"

	optionChangePath = "/remote/v1/product-attributes/"
	cartAddPath      = "/remote/v1/cart/add"
	cartContentPath  = "/remote/v1/cart"
)

// Client 店面远程服务的 HTTP 客户端实现
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient 创建店面客户端实例；httpClient 为 nil 时使用带超时的默认客户端
func NewClient(baseURL string, timeout time.Duration, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// OptionChange 提交序列化后的完整表单状态，返回服务端计算的商品状态
func (c *Client) OptionChange(ctx context.Context, productID string, form *domain.FormSnapshot) (*domain.AttributeChangeResponse, error) {
	body := strings.NewReader(form.Fields.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+optionChangePath+url.PathEscape(productID), body)
	if err != nil {
		return nil, fmt.Errorf("build option change request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var envelope attributeEnvelope
	if err := c.doJSON(req, &envelope); err != nil {
		return nil, fmt.Errorf("option change: %w", err)
	}
	if envelope.Data == nil {
		// 空响应按"无可更新内容"降级处理
		return &domain.AttributeChangeResponse{}, nil
	}
	return envelope.Data, nil
}

// CartItemAdd 以 multipart 形式提交加购表单，文件字段一并携带
func (c *Client) CartItemAdd(ctx context.Context, form *domain.FormSnapshot) (*domain.ItemAddResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, values := range form.Fields {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				return nil, fmt.Errorf("encode cart form field %s: %w", key, err)
			}
		}
	}
	for _, file := range form.Files {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return nil, fmt.Errorf("encode cart form file %s: %w", file.FieldName, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, fmt.Errorf("encode cart form file %s: %w", file.FieldName, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize cart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+cartAddPath, &buf)
	if err != nil {
		return nil, fmt.Errorf("build cart add request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var envelope itemAddEnvelope
	if err := c.doJSON(req, &envelope); err != nil {
		return nil, fmt.Errorf("cart add: %w", err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("cart add: empty response payload")
	}
	return envelope.Data, nil
}

// CartGetContent 拉取渲染后的购物车预览片段
func (c *Client) CartGetContent(ctx context.Context, opts domain.CartContentOptions) (string, error) {
	query := url.Values{}
	query.Set("template", opts.Template)
	if opts.Suggest != "" {
		query.Set("suggest", opts.Suggest)
	}
	if opts.SuggestionsLimit > 0 {
		query.Set("suggestions_limit", strconv.Itoa(opts.SuggestionsLimit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+cartContentPath+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build cart content request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("cart content: %w", err)
	}
	return string(body), nil
}

// do 发送请求并返回响应体；每个请求都携带独立的关联 ID 便于排查
func (c *Client) do(req *http.Request) ([]byte, error) {
	reqID := uuid.New().String()
	req.Header.Set(headerRequestID, reqID)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("storefront request done",
		zap.String("request_id", reqID),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}

// doJSON 发送请求并将响应体解码为 JSON
func (c *Client) doJSON(req *http.Request, dest any) error {
	req.Header.Set("Accept", "application/json")
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
