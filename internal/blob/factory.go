package blob

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Location is a parsed blob address.
type Location struct {
	Driver Driver
	Bucket string // s3 only
	Root   string // filesystem only
	Key    string
}

// ParseLocation splits a data file location into store and key.
//
//	s3://<bucket>/<key>   object in an S3 / MinIO bucket
//	file://<path>, <path> local file, rooted at its directory
func ParseLocation(location string) (Location, error) {
	if strings.TrimSpace(location) == "" {
		return Location{}, fmt.Errorf("empty location")
	}
	if rest, ok := strings.CutPrefix(location, "s3://"); ok {
		bucket, key, found := strings.Cut(rest, "/")
		if !found || bucket == "" || key == "" {
			return Location{}, fmt.Errorf("s3 location %q must be s3://<bucket>/<key>", location)
		}
		return Location{Driver: DriverS3, Bucket: bucket, Key: key}, nil
	}
	path := strings.TrimPrefix(location, "file://")
	return Location{Driver: DriverFilesystem, Root: filepath.Dir(path), Key: filepath.Base(path)}, nil
}

// Open resolves a location to a store and the key to read from it. The S3
// settings other than Bucket are taken from s3cfg.
func Open(ctx context.Context, location string, s3cfg S3Config) (Store, string, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, "", err
	}
	switch loc.Driver {
	case DriverS3:
		s3cfg.Bucket = loc.Bucket
		store, err := NewS3(ctx, s3cfg)
		if err != nil {
			return nil, "", err
		}
		return store, loc.Key, nil
	default:
		store, err := NewFilesystem(loc.Root)
		if err != nil {
			return nil, "", err
		}
		return store, loc.Key, nil
	}
}
