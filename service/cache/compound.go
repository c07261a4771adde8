package cache

import (
	"github.com/x-xyz/nftdash/base/ctx"
)

type compound struct {
	layers []Service
}

// NewCompound stacks caches from fastest to slowest. A hit in a slower layer is copied
// into every faster layer.
func NewCompound(layers ...Service) Service {
	return &compound{layers: layers}
}

func (im *compound) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	return getOrFill(c, im, key, container, getter)
}

func (im *compound) Get(c ctx.Ctx, key string, container interface{}) error {
	for idx, lyr := range im.layers {
		err := lyr.Get(c, key, container)
		if err == ErrNotFound {
			continue
		} else if err != nil {
			return err
		}

		for _, faster := range im.layers[:idx] {
			if err := faster.Set(c, key, container); err != nil {
				return err
			}
		}
		return nil
	}
	return ErrNotFound
}

func (im *compound) Set(c ctx.Ctx, key string, value interface{}) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (im *compound) Del(c ctx.Ctx, key string) error {
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
