package ports

// Watcher monitors a lexicon file for changes and triggers a rebuild. The
// adapter (fsnotify) must survive editors that replace the file on save
// rather than writing in place. Only one Watch call should be active at a
// time.
type Watcher interface {
	// Watch starts monitoring path. onChange is called with the absolute
	// path after each change, debounced. The callback may be invoked from
	// any goroutine.
	Watch(path string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
