package tweener

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

const presetObject = "tween_presets"

// PresetStore persists preset libraries in the platform's app data directory
// through gdata, one library per name.
type PresetStore struct {
	manager *gdata.Manager
}

// OpenPresetStore opens (creating if needed) the data directory of appName.
func OpenPresetStore(appName string) (*PresetStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open preset store %q: %w", appName, err)
	}
	return NewPresetStore(m), nil
}

// NewPresetStore wraps an existing gdata manager, for apps that already keep
// one for their own save data.
func NewPresetStore(m *gdata.Manager) *PresetStore {
	return &PresetStore{manager: m}
}

// Exists reports whether a library is stored under name.
func (s *PresetStore) Exists(name string) bool {
	return s.manager.ObjectPropExists(presetObject, name)
}

// Save stores lib under name, replacing any previous library.
func (s *PresetStore) Save(name string, lib *PresetLibrary) error {
	data, err := lib.Marshal()
	if err != nil {
		return err
	}
	if err := s.manager.SaveObjectProp(presetObject, name, data); err != nil {
		return fmt.Errorf("save presets %q: %w", name, err)
	}
	return nil
}

// Load reads and validates the library stored under name. It returns an error
// wrapping ErrPresetNotFound when nothing is stored there.
func (s *PresetStore) Load(name string) (*PresetLibrary, error) {
	if !s.Exists(name) {
		return nil, fmt.Errorf("load presets %q: %w", name, ErrPresetNotFound)
	}
	data, err := s.manager.LoadObjectProp(presetObject, name)
	if err != nil {
		return nil, fmt.Errorf("load presets %q: %w", name, err)
	}
	lib, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("load presets %q: %w", name, err)
	}
	return lib, nil
}
