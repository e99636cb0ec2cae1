package xouicsv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xoui/pkg/observability/xlog"
)

const sampleCSV = "Registry,Assignment,Organization Name,Organization Address\r\n" +
	"MA-L,00CDFE,\"Apple, Inc.\",1 Infinite Loop Cupertino CA US 95014\r\n" +
	"MA-L,080030,NETWORK RESEARCH CORPORATION,2380 N. ROSE AVENUE OXNARD CA US 93010\r\n" +
	"MA-M,0055DA0,Shinko Technos co.,ltd.,Osaka JP\r\n" +
	"MA-L,000000,XEROX CORPORATION,M/S 105-50C WEBSTER NY US 14580\r\n" +
	"\r\n" +
	"MA-L,0004AC,IBM Corp,3039 E Cornwallis Road RESEARCH TRIANGLE PARK NC US 27709\r\n"

func TestParse(t *testing.T) {
	reg, err := Parse(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, []string{"000000", "0004AC", "00CDFE", "080030"}, reg.Keys())

	org, ok := reg.Lookup("00CDFE")
	assert.True(t, ok)
	assert.Equal(t, "Apple, Inc.", org)

	_, ok = reg.Lookup("0055DA")
	assert.False(t, ok)
}

func TestParse_LastWriteWins(t *testing.T) {
	src := "MA-L,ABCDEF,First\nMA-L,123456,Other\nMA-L,ABCDEF,Second\n"
	for _, workers := range []int{1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			reg, err := Parse(context.Background(), strings.NewReader(src),
				WithWorkers(workers), WithBatchLines(1))
			require.NoError(t, err)
			org, ok := reg.Lookup("ABCDEF")
			assert.True(t, ok)
			assert.Equal(t, "Second", org)
			assert.Equal(t, 2, reg.Len())
		})
	}
}

func TestParse_ParallelMatchesSequential(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Registry,Assignment,Organization Name,Organization Address\n")
	for i := range 5000 {
		// 键空间小于行数，制造大量跨批次重复键
		fmt.Fprintf(&sb, "MA-L,%06X,\"Org %d, Ltd.\",Addr\n", i%1500, i)
		if i%7 == 0 {
			sb.WriteString("garbage line\n")
		}
	}
	data := sb.String()

	seq, err := Parse(context.Background(), strings.NewReader(data))
	require.NoError(t, err)

	for _, batch := range []int{1, 10, 333, DefaultBatchLines, 100000} {
		par, err := Parse(context.Background(), strings.NewReader(data),
			WithWorkers(4), WithBatchLines(batch))
		require.NoError(t, err)
		assert.Equal(t, seq.Entries(), par.Entries(), "batch=%d", batch)
		assert.Equal(t, seq.Fingerprint(), par.Fingerprint())
	}
}

func TestParse_BOMAndLineEndings(t *testing.T) {
	src := "\ufeffMA-L,00CDFE,Apple\r\nMA-L,080030,NRC"
	reg, err := Parse(context.Background(), strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"00CDFE", "080030"}, reg.Keys())

	org, _ := reg.Lookup("080030")
	assert.Equal(t, "NRC", org)
}

func TestParse_Empty(t *testing.T) {
	reg, err := Parse(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, reg.Len())
}

func TestParse_NilSource(t *testing.T) {
	reg, err := Parse(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilSource)
	assert.Nil(t, reg)
}

func TestParse_InvalidWorkers(t *testing.T) {
	_, err := Parse(context.Background(), strings.NewReader(sampleCSV), WithWorkers(0))
	assert.ErrorIs(t, err, ErrInvalidWorkers)

	_, err = ParseFile(context.Background(), "unused.csv", WithWorkers(-1))
	assert.ErrorIs(t, err, ErrInvalidWorkers)
}

func TestParse_ReadError(t *testing.T) {
	boom := errors.New("connection reset")
	for _, workers := range []int{1, 2} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			r := io.MultiReader(strings.NewReader("MA-L,00CDFE,Apple\n"), iotest.ErrReader(boom))
			reg, err := Parse(context.Background(), r, WithWorkers(workers))
			assert.ErrorIs(t, err, ErrRead)
			assert.ErrorIs(t, err, boom)
			assert.Nil(t, reg)
		})
	}
}

func TestParse_LineTooLongIsSkipped(t *testing.T) {
	src := "MA-L,ABCDEF,Foo\n" +
		"garbage" + strings.Repeat("x", MaxLineSize+10) + "\n" +
		"MA-L,00CDFE," + strings.Repeat("y", MaxLineSize) + "\n" +
		"MA-L,123456,Bar\n"

	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			var buf bytes.Buffer
			logger, _, err := xlog.New().SetOutput(&buf).SetLevel(xlog.LevelDebug).Build()
			require.NoError(t, err)

			reg, err := Parse(context.Background(), strings.NewReader(src),
				WithWorkers(workers), WithBatchLines(2), WithLogger(logger))
			require.NoError(t, err)
			assert.Equal(t, []string{"123456", "ABCDEF"}, reg.Keys())

			org, ok := reg.Lookup("123456")
			assert.True(t, ok)
			assert.Equal(t, "Bar", org)

			out := buf.String()
			assert.Contains(t, out, "line=2")
			assert.Contains(t, out, "line=3")
			assert.Equal(t, 2, strings.Count(out, "skip non-record line"))
		})
	}
}

func TestParse_LineAtMaxSize(t *testing.T) {
	line := "MA-L,00CDFE,"
	line += strings.Repeat("z", MaxLineSize-len(line))
	reg, err := Parse(context.Background(), strings.NewReader(line+"\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}

func TestParse_LineTerminators(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"lf", "MA-L,ABCDEF,Foo\nMA-L,123456,Bar\n"},
		{"crlf", "MA-L,ABCDEF,Foo\r\nMA-L,123456,Bar\r\n"},
		{"cr", "MA-L,ABCDEF,Foo\rMA-L,123456,Bar\r"},
		{"mixed", "MA-L,ABCDEF,Foo\rMA-L,123456,Bar\n"},
		{"no_final_terminator", "MA-L,ABCDEF,Foo\rMA-L,123456,Bar"},
	}
	for _, tt := range tests {
		for _, workers := range []int{1, 2} {
			t.Run(fmt.Sprintf("%s/workers=%d", tt.name, workers), func(t *testing.T) {
				reg, err := Parse(context.Background(), strings.NewReader(tt.src), WithWorkers(workers))
				require.NoError(t, err)
				assert.Equal(t, []string{"123456", "ABCDEF"}, reg.Keys())
				org, _ := reg.Lookup("123456")
				assert.Equal(t, "Bar", org)
			})
		}
	}
}

func TestParse_CRLineNumbers(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := xlog.New().SetOutput(&buf).SetLevel(xlog.LevelDebug).Build()
	require.NoError(t, err)

	// "\r\n" 算一个行结束符，"\r\r" 之间是一个空行
	src := "header\r\nMA-L,ABCDEF,Foo\r\rMA-L,123456,Bar\r"
	reg, err := Parse(context.Background(), strings.NewReader(src), WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.Contains(t, buf.String(), "line=3")
	assert.Equal(t, 1, strings.Count(buf.String(), "skip non-record line"))
}

func TestParse_ReadErrorAfterCR(t *testing.T) {
	boom := errors.New("connection reset")
	r := io.MultiReader(strings.NewReader("MA-L,00CDFE,Apple\r"), iotest.ErrReader(boom))
	reg, err := Parse(context.Background(), r)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, reg)
}

func TestParse_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		reg, err := Parse(ctx, strings.NewReader(sampleCSV), WithWorkers(workers))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, reg)
	}
}

func TestParse_LogsSkippedLines(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := xlog.New().SetOutput(&buf).SetLevel(xlog.LevelDebug).Build()
	require.NoError(t, err)

	_, err = Parse(context.Background(), strings.NewReader(sampleCSV), WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	// 表头不记录，MA-M 行与空行记录
	assert.NotContains(t, out, "line=1\n")
	assert.Contains(t, out, "line=4")
	assert.Contains(t, out, "line=6")
	assert.Equal(t, 2, strings.Count(out, "skip non-record line"))
	assert.Contains(t, out, "registry parsed")
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oui.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	reg, err := ParseFile(context.Background(), path, WithWorkers(2), WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())

	_, err = ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
