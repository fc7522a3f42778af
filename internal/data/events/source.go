// Package events turns an append-only JSONL file into a stream of browser
// tab-focus events. The browser side (an extension bridge or a replay tool)
// appends one JSON object per line; the daemon tails the file.
package events

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/fsnotify/fsnotify"

	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/util"
)

// pollInterval backstops fsnotify on filesystems with unreliable events.
const pollInterval = 2 * time.Second

// Source tails a JSONL event file. Tracking starts at the file's current
// end, so a daemon restart does not replay history; producers re-emit an
// activation event when they notice the daemon reconnect.
type Source struct {
	path    string
	file    *os.File
	reader  *bufio.Reader
	offset  int64
	watcher *fsnotify.Watcher
	events  chan model.TabEvent
	done    chan struct{}
}

// NewSource opens (creating if needed) the event file and begins tailing it.
func NewSource(path string) (*Source, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open event stream: %w", err)
	}

	offset, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to seek event stream: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create event watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		file.Close()
		return nil, fmt.Errorf("failed to watch event stream: %w", err)
	}

	s := &Source{
		path:    path,
		file:    file,
		reader:  bufio.NewReader(file),
		offset:  offset,
		watcher: watcher,
		events:  make(chan model.TabEvent, 100),
		done:    make(chan struct{}),
	}
	go s.processEvents()

	return s, nil
}

// Events returns the stream of parsed tab events.
func (s *Source) Events() <-chan model.TabEvent {
	return s.events
}

func (s *Source) processEvents() {
	defer close(s.events)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return

		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				s.drain()
			}

		case <-ticker.C:
			s.drain()

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Event stream watcher error: " + err.Error())
		}
	}
}

// drain reads any newly appended lines and emits the events they carry.
// A shrunken file means the producer rotated it; tailing restarts at zero.
func (s *Source) drain() {
	info, err := os.Stat(s.path)
	if err != nil {
		return
	}
	if info.Size() < s.offset {
		if _, err := s.file.Seek(0, io.SeekStart); err != nil {
			return
		}
		s.offset = 0
		s.reader.Reset(s.file)
	}

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			// A partial line stays buffered in the file until the
			// producer finishes it; rewind so the next drain
			// rereads it whole.
			if len(line) > 0 {
				s.file.Seek(s.offset, io.SeekStart)
				s.reader.Reset(s.file)
			}
			return
		}
		s.offset += int64(len(line))

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var ev model.TabEvent
		if err := sonic.UnmarshalString(line, &ev); err != nil {
			util.LogWarnf("skipping malformed event line: %v", err)
			continue
		}

		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close stops tailing; the event channel closes once the tail goroutine
// winds down.
func (s *Source) Close() error {
	close(s.done)
	err := s.watcher.Close()
	s.file.Close()
	return err
}
