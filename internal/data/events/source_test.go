package events

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webtimed/webtimed/internal/core/model"
)

func newTestSource(t *testing.T) (*Source, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.jsonl")
	s, err := NewSource(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func appendLine(t *testing.T, path, line string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString(line + "\n")
	require.NoError(t, err)
}

func waitEvent(t *testing.T, s *Source) model.TabEvent {
	t.Helper()
	select {
	case ev := <-s.Events():
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return model.TabEvent{}
	}
}

func TestTailEmitsAppendedEvents(t *testing.T) {
	s, path := newTestSource(t)

	appendLine(t, path, `{"type":"activated","tabId":7,"url":"https://github.com"}`)

	ev := waitEvent(t, s)
	assert.Equal(t, model.EventTabActivated, ev.Type)
	assert.Equal(t, 7, ev.TabID)
	assert.Equal(t, "https://github.com", ev.URL)
	assert.Nil(t, ev.Timestamp)
}

func TestTailParsesTimestamp(t *testing.T) {
	s, path := newTestSource(t)

	appendLine(t, path, `{"type":"idle","state":"idle","timestamp":1711972800000}`)

	ev := waitEvent(t, s)
	assert.Equal(t, model.EventIdleChanged, ev.Type)
	assert.Equal(t, model.IdleStateIdle, ev.State)
	require.NotNil(t, ev.Timestamp)
	assert.Equal(t, int64(1711972800000), ev.Timestamp.UnixMilli())
}

func TestTailSkipsMalformedLines(t *testing.T) {
	s, path := newTestSource(t)

	appendLine(t, path, `not json at all`)
	appendLine(t, path, ``)
	appendLine(t, path, `{"type":"activated","tabId":1,"url":"https://a.com"}`)

	ev := waitEvent(t, s)
	assert.Equal(t, 1, ev.TabID)
}

func TestTailStartsAtEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"type":"activated","tabId":99,"url":"https://old.com"}`+"\n"), 0644))

	s, err := NewSource(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	// History is not replayed; only lines appended after open arrive.
	appendLine(t, path, `{"type":"activated","tabId":100,"url":"https://new.com"}`)
	ev := waitEvent(t, s)
	assert.Equal(t, 100, ev.TabID)
}

func TestTailSurvivesTruncation(t *testing.T) {
	s, path := newTestSource(t)

	appendLine(t, path, `{"type":"activated","tabId":1,"url":"https://a.com"}`)
	waitEvent(t, s)

	// Producer rotates the file; tailing restarts from the top.
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"type":"activated","tabId":2,"url":"https://b.com"}`+"\n"), 0644))

	ev := waitEvent(t, s)
	assert.Equal(t, 2, ev.TabID)
}

func TestCloseEndsStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	s, err := NewSource(path)
	require.NoError(t, err)

	require.NoError(t, s.Close())

	select {
	case _, open := <-s.Events():
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("event channel did not close")
	}
}
