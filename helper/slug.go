package helper

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
)

type SlugChecker interface {
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
}

// GenerateUniqueCourtSlug appends -1, -2, ... until the slug is free. The
// court being renamed (excludeID) does not collide with itself.
func GenerateUniqueCourtSlug(ctx context.Context, courts SlugChecker, name string, excludeID uint) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "court"
	}
	result := base
	i := 1

	for {
		exists, err := courts.SlugExists(ctx, result, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result, nil
}
