package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/pagesum"
	main "github.com/fwojciec/pagesum/cmd/pagesum"
	"github.com/fwojciec/pagesum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMain returns a Main with stubbed services and an empty environment.
func testMain(t *testing.T, html string, replies ...string) (*main.Main, *int) {
	t.Helper()

	calls := 0
	return &main.Main{
		Environ: map[string]string{},
		WorkDir: t.TempDir(),
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return html, nil },
			CloseFn: func() error { return nil },
		},
		Completer: &mock.Completer{
			CompleteFn: func(ctx context.Context, req pagesum.CompletionRequest) (string, error) {
				calls++
				if calls > len(replies) {
					return "", errors.New("unexpected completion call")
				}
				return replies[calls-1], nil
			},
		},
	}, &calls
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "pagesum")
	assert.Contains(t, stdout.String(), "--url")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RequiresURL(t *testing.T) {
	t.Parallel()

	m, _ := testMain(t, "")
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--output", "out.txt"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RejectsUnknownProvider(t *testing.T) {
	t.Parallel()

	m, _ := testMain(t, "")
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--url", "https://example.com", "--provider", "other"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_PrintsFramedSummary(t *testing.T) {
	t.Parallel()

	m, calls := testMain(t, "<p>Der Hund läuft schnell.</p>", "Language: German", "Ein Hund läuft.")
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--url", "https://example.de/hund"}, &stdout, &stderr)

	require.NoError(t, err)
	want := "\n" +
		strings.Repeat("=", 50) + " SUMMARY " + strings.Repeat("=", 50) + "\n" +
		"Ein Hund läuft.\n" +
		strings.Repeat("=", 110) + "\n"
	assert.Equal(t, want, stdout.String())
	assert.Equal(t, 2, *calls)
	assert.Contains(t, stderr.String(), "run=")
}

func TestMain_Run_LogsNormalizedURL(t *testing.T) {
	t.Parallel()

	m, _ := testMain(t, "<p>The dog runs.</p>", "English", "A dog runs.")
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--url", "https://example.com/a b"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Regexp(t, `msg="accessing url" run=\S+ url=https://example\.com/a%20b\n`, stderr.String())
}

func TestMain_Run_WritesOutputFile(t *testing.T) {
	t.Parallel()

	m, _ := testMain(t, "<p>The dog runs.</p>", "English", "A dog runs.")
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--url", "https://example.com", "--output", "out/summary.txt"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "Summary saved to out/summary.txt\n", stdout.String())
	content, err := os.ReadFile(filepath.Join(m.WorkDir, "out", "summary.txt"))
	require.NoError(t, err)
	assert.Equal(t, "A dog runs.", string(content))
}

func TestMain_Run_PipelineFailureIsPrinted(t *testing.T) {
	t.Parallel()

	m, calls := testMain(t, "<p>text</p>")
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", errors.New("navigation failed: net::ERR_NAME_NOT_RESOLVED")
		},
		CloseFn: func() error { return nil },
	}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--url", "https://invalid.example"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Error: ")
	assert.Contains(t, stdout.String(), "ERR_NAME_NOT_RESOLVED")
	assert.Equal(t, 0, *calls)
}

func TestMain_Run_MaxWords(t *testing.T) {
	t.Parallel()

	var prompt string
	m, _ := testMain(t, "<p>one two three four</p>")
	m.Completer = &mock.Completer{
		CompleteFn: func(ctx context.Context, req pagesum.CompletionRequest) (string, error) {
			prompt = req.Prompt
			return "", errors.New("stop")
		},
	}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--url", "https://example.com", "--max-words", "2"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, prompt, "one two")
	assert.NotContains(t, prompt, "three")
}
