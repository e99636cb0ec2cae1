package xsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// maxErrorBody 非 2xx 响应体最多读取的字节数，用于错误信息
const maxErrorBody = 512

// IsRemote 报告 src 是否为 http/https URL。
func IsRemote(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open 打开数据源，调用方负责关闭返回的 ReadCloser。
//
// client 为 nil 时使用 http.DefaultClient。所有失败都包装 [ErrUnavailable]。
func Open(ctx context.Context, src string, client *http.Client) (io.ReadCloser, error) {
	if src == "" {
		return nil, ErrEmptySource
	}
	if !IsRemote(src) {
		f, err := os.Open(src) //nolint:gosec // 路径由调用方提供
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return f, nil
	}

	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: %s: %q", ErrUnavailable, src, resp.Status, strings.TrimSpace(string(body)))
	}
	return resp.Body, nil
}
