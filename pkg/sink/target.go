package sink

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/htmlcomponent/internal/errors"
)

// Target is a parsed output destination.
type Target struct {
	// Stdout is set for "-".
	Stdout bool

	// Dir and Name locate a file target.
	Dir  string
	Name string

	// Bucket and Key locate an S3 object. Name is unused.
	Bucket string
	Key    string
}

// ParseTarget parses "-", a file path, or s3://bucket/key.
func ParseTarget(target string) (Target, error) {
	switch {
	case target == "" || target == "-":
		return Target{Stdout: true}, nil
	case strings.HasPrefix(target, "s3://"):
		rest := strings.TrimPrefix(target, "s3://")
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
			return Target{}, errors.New(errors.CodeSinkTarget).
				WithDetailf("%q must look like s3://bucket/key", target)
		}
		return Target{Bucket: bucket, Key: key}, nil
	default:
		if strings.HasSuffix(target, "/") || strings.HasSuffix(target, string(filepath.Separator)) {
			return Target{}, errors.New(errors.CodeSinkTarget).
				WithDetailf("%q names a directory, not a file", target)
		}
		return Target{Dir: filepath.Dir(target), Name: filepath.Base(target)}, nil
	}
}

// IsS3 reports whether the target is an S3 object.
func (t Target) IsS3() bool {
	return t.Bucket != ""
}

// String formats the target the way ParseTarget accepts it.
func (t Target) String() string {
	switch {
	case t.Stdout:
		return "-"
	case t.IsS3():
		return "s3://" + t.Bucket + "/" + t.Key
	default:
		return filepath.Join(t.Dir, t.Name)
	}
}

// Open returns the sink for t and the name to publish under. S3 targets
// use client, built with NewS3Client when nil.
func Open(t Target, client PutObjectAPI, s3opts S3Options) (Sink, string, error) {
	switch {
	case t.Stdout:
		return NewWriter(os.Stdout), "", nil
	case t.IsS3():
		if client == nil {
			client = NewS3Client(s3opts)
		}
		return NewS3(client, t.Bucket, s3opts.Prefix).WithContentType(s3opts.ContentType), t.Key, nil
	default:
		f, err := NewFile(t.Dir)
		if err != nil {
			return nil, "", err
		}
		return f, t.Name, nil
	}
}
