// Package syncer keeps the manifest and registry artifacts in sync with the
// on-disk asset tree, either as a one-shot rebuild or as a resident watch
// loop over filesystem events.
package syncer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/nevereverland/voxsync/internal/asset"
)

// EventOp is the kind of asset change a watch event reports.
type EventOp int

const (
	// OpAdd indicates a container file appeared.
	OpAdd EventOp = iota
	// OpRemove indicates a container file disappeared.
	OpRemove
)

// String returns a human-readable representation of the operation.
func (op EventOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Event is one qualifying asset change: a container file added to or
// removed from a fixed-category folder.
type Event struct {
	Category asset.Category
	Name     string // bare container filename
	Op       EventOp
}

// Watcher converts raw fsnotify events under the asset root into typed
// asset Events. Events for hidden paths, non-container files, or folders
// outside the fixed category set are dropped.
type Watcher struct {
	Events <-chan Event // read-only external channel

	root    string
	events  chan Event
	done    chan struct{}
	quit    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given asset root. Start must be
// called before events are emitted.
func NewWatcher(root string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Event, 16)
	return &Watcher{
		Events:  ch,
		root:    root,
		events:  ch,
		done:    make(chan struct{}),
		quit:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start watches the asset root and every fixed-category folder that exists.
// Category folders created later are picked up live from the root watch.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.root); err != nil {
		return err
	}
	for _, category := range asset.Categories() {
		dir := filepath.Join(w.root, string(category))
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the event channel, waiting for the internal
// loop to exit. The quit channel unblocks a send stuck on a full buffer
// after the consumer has gone away, so Stop always returns.
func (w *Watcher) Stop() {
	close(w.quit)
	w.watcher.Close()
	<-w.done
	close(w.events)
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next rebuild resyncs.
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if hiddenPath(w.root, event.Name) {
		return
	}

	// A fixed-category folder appearing under the root joins the watch.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_, known := asset.ParseCategory(filepath.Base(event.Name))
			if known && filepath.Dir(event.Name) == filepath.Clean(w.root) {
				w.watcher.Add(event.Name)
			}
			return
		}
	}

	if !strings.HasSuffix(event.Name, asset.ContainerExt) {
		return
	}
	category, ok := categoryOf(w.root, event.Name)
	if !ok {
		return
	}

	var op EventOp
	switch {
	case event.Has(fsnotify.Create):
		op = OpAdd
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		op = OpRemove
	default:
		// Write and Chmod don't change the asset set.
		return
	}

	select {
	case w.events <- Event{Category: category, Name: filepath.Base(event.Name), Op: op}:
	case <-w.quit:
	}
}

// categoryOf derives the fixed category from the first path segment beneath
// the asset root. Paths outside the root or in unknown folders report false.
func categoryOf(root, path string) (asset.Category, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")
	if len(segments) < 2 {
		return "", false
	}
	return asset.ParseCategory(segments[0])
}

// hiddenPath reports whether any segment of path below root starts with a
// dot.
func hiddenPath(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(segment, ".") && segment != "." && segment != ".." {
			return true
		}
	}
	return false
}
