package app

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/tokenbar/tokenbar/internal/util"
)

// FileWatcher reports changes to JSONL files under the log roots so the
// monitor can refresh ahead of its next tick.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	events  chan string
}

func NewFileWatcher(paths []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		events:  make(chan string, 100),
	}

	for _, path := range paths {
		if err := fw.addPath(path); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) addPath(path string) error {
	// Recursively add directories
	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return fw.watcher.Add(p)
		}
		return nil
	})
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) == ".jsonl" {
				select {
				case fw.events <- event.Name:
				default:
					// A refresh is already pending; dropping is fine
				}
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

func (fw *FileWatcher) Events() <-chan string {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
