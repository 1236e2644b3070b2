package persist

import (
	"image"
	"log"
)

// Slot is a string key/value store that survives restarts. fyne.Preferences
// satisfies it.
type Slot interface {
	String(key string) string
	SetString(key string, value string)
}

// Store keeps the surface snapshot under a single key of a Slot.
type Store struct {
	slot Slot
	key  string
	post func(func())
}

// New returns a store writing to key in slot. post runs a function on the
// host's event goroutine; a nil post calls it directly.
func New(slot Slot, key string, post func(func())) *Store {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Store{slot: slot, key: key, post: post}
}

// Save overwrites the snapshot with img. Failures are logged, never
// returned.
func (s *Store) Save(img image.Image) {
	url, err := EncodeDataURL(img)
	if err != nil {
		log.Printf("[PERSIST] Failed to save canvas: %v", err)
		return
	}
	s.slot.SetString(s.key, url)
	log.Println("[PERSIST] Canvas saved to local storage.")
}

// Load reads the snapshot and decodes it on its own goroutine. On success
// apply is posted to the event goroutine; a missing or corrupt snapshot
// leaves the surface untouched. Load returns immediately.
func (s *Store) Load(apply func(img image.Image)) {
	s.load(apply, nil)
}

func (s *Store) load(apply func(img image.Image), done func()) {
	saved := s.slot.String(s.key)
	if saved == "" {
		if done != nil {
			done()
		}
		return
	}

	go func() {
		if done != nil {
			defer done()
		}
		img, err := DecodeDataURL(saved)
		if err != nil {
			log.Printf("[PERSIST] Failed to restore canvas: %v", err)
			return
		}
		s.post(func() { apply(img) })
	}()
	log.Println("[PERSIST] Canvas loaded from local storage.")
}

// Stored decodes the saved snapshot synchronously. It returns nil and no
// error when nothing is saved.
func (s *Store) Stored() (image.Image, error) {
	saved := s.slot.String(s.key)
	if saved == "" {
		return nil, nil
	}
	return DecodeDataURL(saved)
}

// Clear removes the stored snapshot.
func (s *Store) Clear() {
	s.slot.SetString(s.key, "")
}
