package gamedata

import (
	"errors"
	"math/rand"
	"sync"
)

// FeatureDef defines a cosmetic dungeon feature loaded from JSON.
// Features are spread over room floors after generation; they never
// affect walkability or connectivity.
type FeatureDef struct {
	ID         string   `json:"id"`         // Unique identifier (e.g., "water")
	Name       string   `json:"name"`       // Display name (e.g., "Shallow Water")
	Glyph      string   `json:"glyph"`      // Single character for rendering
	Color      string   `json:"color"`      // Hex color code (e.g., "#3B6EA5")
	RoomTypes  []string `json:"roomTypes"`  // Room types this feature may appear in
	Weight     int      `json:"weight"`     // Relative pick frequency (higher = more common)
	ClusterMin int      `json:"clusterMin"` // Minimum cells tagged per placement
	ClusterMax int      `json:"clusterMax"` // Maximum cells tagged per placement
}

// GlyphRune returns the glyph as a rune for rendering.
func (f *FeatureDef) GlyphRune() rune {
	if len(f.Glyph) == 0 {
		return '?'
	}
	return rune(f.Glyph[0])
}

// AllowsRoomType returns true if the feature may appear in the room type.
func (f *FeatureDef) AllowsRoomType(roomType string) bool {
	for _, t := range f.RoomTypes {
		if t == roomType {
			return true
		}
	}
	return false
}

// FeaturesFile represents the structure of features.json.
type FeaturesFile struct {
	Features []FeatureDef `json:"features"`
}

// LoadFeatures loads feature definitions from the embedded features.json.
func LoadFeatures() ([]FeatureDef, error) {
	file, err := Load[FeaturesFile]("features.json")
	if err != nil {
		return nil, err
	}
	return file.Features, nil
}

// FeatureRegistry holds loaded feature definitions and provides weighted
// selection. The registry is immutable after construction, so one shared
// instance is safe across concurrent generation calls.
type FeatureRegistry struct {
	features []FeatureDef
}

// NewFeatureRegistry creates a registry from loaded feature definitions.
func NewFeatureRegistry(features []FeatureDef) *FeatureRegistry {
	return &FeatureRegistry{features: features}
}

var (
	registryOnce   sync.Once
	sharedRegistry *FeatureRegistry
	registryErr    error
)

// LoadFeatureRegistry loads the registry from the embedded features.json.
// The load happens once; subsequent calls return the shared instance.
func LoadFeatureRegistry() (*FeatureRegistry, error) {
	registryOnce.Do(func() {
		features, err := LoadFeatures()
		if err != nil {
			registryErr = err
			return
		}
		if len(features) == 0 {
			registryErr = errors.New("no features loaded from features.json")
			return
		}
		sharedRegistry = NewFeatureRegistry(features)
	})
	return sharedRegistry, registryErr
}

// MustLoadFeatureRegistry loads the registry, panicking on error.
func MustLoadFeatureRegistry() *FeatureRegistry {
	registry, err := LoadFeatureRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// PickRandom selects a feature eligible for the room type using weighted
// probability, or nil when none is eligible. The caller's RNG drives the
// roll so selection stays deterministic per generation.
func (r *FeatureRegistry) PickRandom(rng *rand.Rand, roomType string) *FeatureDef {
	totalWeight := 0
	for i := range r.features {
		if r.features[i].AllowsRoomType(roomType) {
			totalWeight += r.features[i].Weight
		}
	}
	if totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(totalWeight)
	cumulative := 0
	for i := range r.features {
		if !r.features[i].AllowsRoomType(roomType) {
			continue
		}
		cumulative += r.features[i].Weight
		if roll < cumulative {
			return &r.features[i]
		}
	}
	return nil
}

// GetByID returns the feature definition with the given ID, or nil.
func (r *FeatureRegistry) GetByID(id string) *FeatureDef {
	for i := range r.features {
		if r.features[i].ID == id {
			return &r.features[i]
		}
	}
	return nil
}

// All returns all feature definitions.
func (r *FeatureRegistry) All() []FeatureDef {
	return r.features
}

// Count returns the number of feature types in the registry.
func (r *FeatureRegistry) Count() int {
	return len(r.features)
}
