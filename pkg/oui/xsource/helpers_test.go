package xsource

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

const csvV1 = "Registry,Assignment,Organization Name,Organization Address\n" +
	"MA-L,00CDFE,\"Apple, Inc.\",1 Infinite Loop Cupertino CA US 95014\n" +
	"MA-L,0004AC,IBM Corp,3039 E Cornwallis Road\n"

const csvV2 = csvV1 + "MA-L,485073,Microsoft Corporation,One Microsoft Way\n"

// noKeepAlive 测试结束时不残留空闲连接
func noKeepAlive() *http.Client {
	return &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
}

// flakyServer 前 failures 次请求返回 503，之后返回 body。
func flakyServer(t *testing.T, failures int32, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= failures {
			http.Error(w, "try later", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func writeCSV(t *testing.T, path, data string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(data), 0o600))
	require.NoError(t, os.Rename(tmp, path))
}

func tempCSV(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oui.csv")
	writeCSV(t, path, data)
	return path
}
