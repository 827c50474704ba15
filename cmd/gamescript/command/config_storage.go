package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-gamescript/internal/game"
	"github.com/pixil98/go-gamescript/internal/storage"
)

type StorageConfig struct {
	Areas     AssetConfig[*game.AreaDef]     `json:"areas"`
	Creatures AssetConfig[*game.CreatureDef] `json:"creatures"`
}

// BuildGame loads the asset stores and instantiates the world.
func (c *StorageConfig) BuildGame(opts ...game.GameOpt) (*game.Game, error) {
	areas, err := c.Areas.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating area store: %w", err)
	}
	creatures, err := c.Creatures.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating creature store: %w", err)
	}

	g, err := game.BuildGame(areas, creatures, opts...)
	if err != nil {
		return nil, fmt.Errorf("building game: %w", err)
	}
	return g, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Areas.Validate("areas"))
	el.Add(c.Creatures.Validate("creatures"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
