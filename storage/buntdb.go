package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/buntdb"

	"github.com/plotkit/plotkit/core"
)

const configPrefix = "config:"

// BuntStorage implements core.ConfigStorage on BuntDB, a single-file
// key-value store. Configurations are kept as YAML under "config:<name>".
type BuntStorage struct {
	db *buntdb.DB
}

// FromMemory creates an in-memory store, useful for tests and scratch work.
func FromMemory() (*BuntStorage, error) {
	return NewBuntStorage(":memory:")
}

// FromFile creates a file-backed store.
func FromFile(file string) (*BuntStorage, error) {
	return NewBuntStorage(file)
}

// NewBuntStorage opens the BuntDB source file.
func NewBuntStorage(sourceFile string) (*BuntStorage, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}
	return &BuntStorage{db: db}, nil
}

// SaveConfig stores the configuration under name, replacing any previous
// version.
func (b *BuntStorage) SaveConfig(name string, cfg *core.PlotConfig) error {
	content, err := yamlString(cfg)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(configPrefix+name, content, nil)
		if err != nil {
			return fmt.Errorf("failed to store config %q: %w", name, err)
		}
		return nil
	})
}

// LoadConfig retrieves the named configuration.
func (b *BuntStorage) LoadConfig(name string) (*core.PlotConfig, error) {
	var raw string
	err := b.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(configPrefix + name)
		if err != nil {
			return err
		}
		raw = v
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, fmt.Errorf("%w: config %q", core.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", name, err)
	}
	return decodeStrict([]byte(raw))
}

// ListConfigs returns the stored configuration names in key order.
func (b *BuntStorage) ListConfigs() ([]string, error) {
	var names []string
	err := b.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(configPrefix+"*", func(key, _ string) bool {
			names = append(names, strings.TrimPrefix(key, configPrefix))
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}
	return names, nil
}

// DeleteConfig removes the named configuration.
func (b *BuntStorage) DeleteConfig(name string) error {
	err := b.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(configPrefix + name)
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return fmt.Errorf("%w: config %q", core.ErrNotFound, name)
	}
	return err
}

// Close closes the database.
func (b *BuntStorage) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func yamlString(cfg *core.PlotConfig) (string, error) {
	out, err := marshalYAML(cfg)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
