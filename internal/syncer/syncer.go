package syncer

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/nevereverland/voxsync/internal/asset"
	"github.com/nevereverland/voxsync/internal/catalog"
	"github.com/nevereverland/voxsync/internal/config"
	"github.com/nevereverland/voxsync/internal/vox"
)

// Syncer orchestrates rebuilds of manifests and the registry. The mutex
// serializes overlapping rebuilds: each qualifying event still triggers
// exactly one rebuild, they just queue instead of interleaving writes to
// the same artifact files. A started rebuild always runs to completion.
type Syncer struct {
	// OnEvent, when set, is invoked after each event-triggered rebuild
	// with the event and the rebuilt category's asset count.
	OnEvent func(Event, int)

	cfg      config.Config
	resolver *vox.SizeResolver
	log      *slog.Logger

	mu sync.Mutex
}

// New creates a Syncer. A nil logger discards output.
func New(cfg config.Config, log *slog.Logger) *Syncer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Syncer{
		cfg:      cfg,
		resolver: vox.NewSizeResolver(log),
		log:      log,
	}
}

// RebuildAll regenerates the manifest of every fixed category whose folder
// exists, then the full registry. Malformed individual containers never
// abort the run; only artifact write failures (or an unreadable tree)
// propagate.
func (s *Syncer) RebuildAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("full rebuild started", "root", s.cfg.Root)

	all := make(map[asset.Category][]asset.Descriptor, len(asset.Categories()))
	for _, category := range asset.Categories() {
		descriptors, err := catalog.Build(s.cfg.Root, category, s.resolver)
		if err != nil {
			return err
		}
		all[category] = descriptors

		if !s.categoryDirExists(category) {
			continue
		}
		if err := catalog.WriteManifest(s.cfg.Root, category, descriptors); err != nil {
			return err
		}
		s.log.Debug("manifest written", "category", category, "assets", len(descriptors))
	}

	if err := catalog.WriteRegistry(s.cfg.Registry, all); err != nil {
		return err
	}
	s.log.Info("full rebuild complete", "registry", s.cfg.Registry)
	return nil
}

// RebuildCategory regenerates one category's manifest, then always the full
// registry, since the registry spans every category. It returns the
// category's asset count.
func (s *Syncer) RebuildCategory(ctx context.Context, category asset.Category) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("category rebuild started", "category", category)

	descriptors, err := catalog.Build(s.cfg.Root, category, s.resolver)
	if err != nil {
		return 0, err
	}
	if s.categoryDirExists(category) {
		if err := catalog.WriteManifest(s.cfg.Root, category, descriptors); err != nil {
			return 0, err
		}
	}

	all := make(map[asset.Category][]asset.Descriptor, len(asset.Categories()))
	all[category] = descriptors
	for _, other := range asset.Categories() {
		if other == category {
			continue
		}
		others, err := catalog.Build(s.cfg.Root, other, s.resolver)
		if err != nil {
			return 0, err
		}
		all[other] = others
	}
	if err := catalog.WriteRegistry(s.cfg.Registry, all); err != nil {
		return 0, err
	}
	s.log.Info("category rebuilt", "category", category, "assets", len(descriptors))
	return len(descriptors), nil
}

// Watch runs a full rebuild, then drains the watcher's event channel with a
// single consumer until ctx is canceled. There is no debouncing: each
// qualifying event triggers one rebuild of its category. Rebuild failures
// for artifact writes are fatal and returned.
func (s *Syncer) Watch(ctx context.Context) error {
	if err := s.RebuildAll(ctx); err != nil {
		return err
	}

	watcher, err := NewWatcher(s.cfg.Root)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	s.log.Info("watching for asset changes", "root", s.cfg.Root)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.log.Info("asset change", "op", event.Op.String(), "category", event.Category, "file", event.Name)
			count, err := s.RebuildCategory(ctx, event.Category)
			if err != nil {
				return err
			}
			if s.OnEvent != nil {
				s.OnEvent(event, count)
			}
		}
	}
}

func (s *Syncer) categoryDirExists(category asset.Category) bool {
	info, err := os.Stat(filepath.Join(s.cfg.Root, string(category)))
	return err == nil && info.IsDir()
}
