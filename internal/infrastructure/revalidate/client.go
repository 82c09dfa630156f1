package revalidate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/na2na-p/storefront/internal/usecase"
)

var (
	_ usecase.PageRevalidator = (*Client)(nil)
	_ usecase.CacheWarmer     = (*Client)(nil)
)

const defaultRequestTimeout = 10 * time.Second

// Client はフロントエンドの再検証エンドポイントを呼び出すHTTPクライアントです。
// ページキャッシュストアを直接操作できない構成向けのフォールバックとして、
// usecase.PageRevalidatorとusecase.CacheWarmerの両方を実装します。
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

func NewClient(baseURL, secret string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		secret:  secret,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}
}

// Revalidate は対象パスの再検証をフロントエンドへ依頼します
func (c *Client) Revalidate(ctx context.Context, path string) error {
	endpoint := fmt.Sprintf("%s/api/revalidate?secret=%s&path=%s",
		c.baseURL,
		url.QueryEscape(c.secret),
		url.QueryEscape(path),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("再検証リクエストの作成に失敗しました: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("再検証リクエストに失敗しました: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("再検証リクエストが失敗しました: status=%d path=%s", resp.StatusCode, path)
	}

	return nil
}

// Warm は対象パスを再取得してページキャッシュを温めます
func (c *Client) Warm(ctx context.Context, path string) error {
	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("ウォーミングリクエストの作成に失敗しました: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ウォーミングリクエストに失敗しました: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("ウォーミングリクエストが失敗しました: status=%d path=%s", resp.StatusCode, path)
	}

	return nil
}
