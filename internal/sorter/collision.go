package sorter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// maxCollisionProbes caps sequential disambiguation before a file is
// reported as failed instead of looping unboundedly.
const maxCollisionProbes = 10000

// errCollisionExhausted is returned when no free name exists within the
// probe cap.
var errCollisionExhausted = errors.New("collision probe cap exceeded")

// collisionResolver produces a guaranteed-unique destination path. It
// probes the filesystem at resolution time (not a stale listing) and also
// tracks paths claimed earlier in the same run, so dry runs make the same
// decisions as real runs without mutating anything.
type collisionResolver struct {
	fs      FileSystem
	claimed map[string]bool
}

func newCollisionResolver(fsys FileSystem) *collisionResolver {
	return &collisionResolver{
		fs:      fsys,
		claimed: make(map[string]bool),
	}
}

// Resolve returns candidate unchanged if it is free, otherwise the first
// "name (N).ext" variant (N starting at 1) that neither exists on disk nor
// was claimed earlier in this run.
func (cr *collisionResolver) Resolve(dir, candidate string) (string, error) {
	path := filepath.Join(dir, candidate)
	free, err := cr.free(path)
	if err != nil {
		return "", err
	}
	if free {
		cr.claimed[path] = true
		return path, nil
	}

	ext := filepath.Ext(candidate)
	stem := strings.TrimSuffix(candidate, ext)

	for n := 1; n <= maxCollisionProbes; n++ {
		variant := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		free, err := cr.free(variant)
		if err != nil {
			return "", err
		}
		if free {
			cr.claimed[variant] = true
			return variant, nil
		}
	}
	return "", errCollisionExhausted
}

func (cr *collisionResolver) free(path string) (bool, error) {
	if cr.claimed[path] {
		return false, nil
	}
	exists, err := cr.fs.Exists(path)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
