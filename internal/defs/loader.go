// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/*.json
var defaults embed.FS

// ProjectileLibrary is a map to hold all projectile definitions, keyed by their ID.
var ProjectileLibrary map[string]ProjectileDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// StageLibrary is a map to hold all stage definitions, keyed by their ID.
var StageLibrary map[string]StageDefinition

func loadLibrary[T any](raw []byte, key func(T) string) (map[string]T, error) {
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	lib := make(map[string]T, len(list))
	for _, def := range list {
		lib[key(def)] = def
	}
	return lib, nil
}

// LoadProjectileDefinitions reads the projectile configuration file and
// populates the ProjectileLibrary.
func LoadProjectileDefinitions(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read projectile definitions file: %w", err)
	}
	lib, err := loadLibrary(raw, func(d ProjectileDefinition) string { return d.ID })
	if err != nil {
		return fmt.Errorf("failed to unmarshal projectile definitions: %w", err)
	}
	ProjectileLibrary = lib
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the
// EnemyLibrary. Aim presets are clamped on load so the rest of the game never
// sees out-of-range values.
func LoadEnemyDefinitions(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	lib, err := loadLibrary(raw, func(d EnemyDefinition) string { return d.ID })
	if err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	EnemyLibrary = clampEnemyPresets(lib)
	return nil
}

// LoadStageDefinitions reads the stage configuration file and populates the
// StageLibrary.
func LoadStageDefinitions(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read stage definitions file: %w", err)
	}
	lib, err := loadLibrary(raw, func(d StageDefinition) string { return d.ID })
	if err != nil {
		return fmt.Errorf("failed to unmarshal stage definitions: %w", err)
	}
	StageLibrary = lib
	return nil
}

// LoadDefaults populates all libraries from the definitions embedded into the
// binary. Tests and the game itself work without external asset paths.
func LoadDefaults() error {
	files := []struct {
		name string
		load func([]byte) error
	}{
		{"data/projectiles.json", func(raw []byte) error {
			lib, err := loadLibrary(raw, func(d ProjectileDefinition) string { return d.ID })
			if err == nil {
				ProjectileLibrary = lib
			}
			return err
		}},
		{"data/enemies.json", func(raw []byte) error {
			lib, err := loadLibrary(raw, func(d EnemyDefinition) string { return d.ID })
			if err == nil {
				EnemyLibrary = clampEnemyPresets(lib)
			}
			return err
		}},
		{"data/stages.json", func(raw []byte) error {
			lib, err := loadLibrary(raw, func(d StageDefinition) string { return d.ID })
			if err == nil {
				StageLibrary = lib
			}
			return err
		}},
	}
	for _, f := range files {
		raw, err := defaults.ReadFile(f.name)
		if err != nil {
			return fmt.Errorf("failed to read embedded %s: %w", f.name, err)
		}
		if err := f.load(raw); err != nil {
			return fmt.Errorf("failed to unmarshal embedded %s: %w", f.name, err)
		}
	}
	return nil
}

func clampEnemyPresets(lib map[string]EnemyDefinition) map[string]EnemyDefinition {
	for id, def := range lib {
		def.Easy.Clamp()
		def.Hard.Clamp()
		lib[id] = def
	}
	return lib
}
