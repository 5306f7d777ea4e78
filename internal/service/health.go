package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"exusiai.dev/chartboard/internal/pkg/fontreg"
)

var (
	ErrFontsNotLoaded    = errors.New("fonts not loaded")
	ErrRedisNotReachable = errors.New("redis not reachable")
)

type Health struct {
	Fonts *fontreg.Registry
	Redis *redis.Client
}

func NewHealth(fonts *fontreg.Registry, redis *redis.Client) *Health {
	return &Health{
		Fonts: fonts,
		Redis: redis,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if s.Fonts == nil {
		return ErrFontsNotLoaded
	}
	if _, err := s.Fonts.Face(10, false); err != nil {
		return errors.Wrap(ErrFontsNotLoaded, err.Error())
	}

	// redis is optional
	if s.Redis != nil {
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			return errors.Wrap(ErrRedisNotReachable, err.Error())
		}
	}

	return nil
}
