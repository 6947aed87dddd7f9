package loader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"contatorapido_backend/internals/constants"
	"contatorapido_backend/internals/features/students/directory/model"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"gorm.io/gorm"
)

// Source yields raw data file bodies keyed by logical path
// ("1-ano/A.json", "data/3-medio/E.json", ...).
type Source interface {
	Name() string
	Files(ctx context.Context) (map[string][]byte, error)
}

/* =========================
 * Filesystem (embed or directory)
 * ========================= */

type FSSource struct {
	FS    fs.FS
	Label string
}

func NewFSSource(fsys fs.FS, label string) *FSSource {
	return &FSSource{FS: fsys, Label: label}
}

func (s *FSSource) Name() string { return s.Label }

func (s *FSSource) Files(ctx context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte)
	err := fs.WalkDir(s.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !constants.IsDataFile(p) {
			return nil
		}
		body, err := fs.ReadFile(s.FS, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		out[p] = body
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* =========================
 * Postgres (student_files)
 * ========================= */

type DBSource struct {
	DB *gorm.DB
}

func NewDBSource(db *gorm.DB) *DBSource {
	return &DBSource{DB: db}
}

func (s *DBSource) Name() string { return "db" }

func (s *DBSource) Files(ctx context.Context) (map[string][]byte, error) {
	var rows []model.StudentFileModel
	if err := s.DB.WithContext(ctx).
		Order("student_file_path ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query student_files: %w", err)
	}
	out := make(map[string][]byte, len(rows))
	for _, r := range rows {
		out[r.StudentFilePath] = []byte(r.StudentFileRecords)
	}
	return out, nil
}

/* =========================
 * Aliyun OSS bucket
 * ========================= */

// ObjectStore is the slice of *oss.Bucket the loader needs.
type ObjectStore interface {
	ListObjects(options ...oss.Option) (oss.ListObjectsResult, error)
	GetObject(objectKey string, options ...oss.Option) (io.ReadCloser, error)
}

type OSSConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	SecurityToken string
	Bucket        string
	Prefix        string // optional: "students/"
}

// OSSSource reads data files below Prefix; logical paths are the keys
// with the prefix stripped.
type OSSSource struct {
	Store  ObjectStore
	Prefix string
}

func NewOSSSource(cfg OSSConfig) (*OSSSource, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if cfg.SecurityToken != "" {
		client, err = oss.New(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, oss.SecurityToken(cfg.SecurityToken))
	} else {
		client, err = oss.New(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	return &OSSSource{Store: bkt, Prefix: cfg.Prefix}, nil
}

func (s *OSSSource) Name() string { return "oss" }

func (s *OSSSource) Files(ctx context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte)
	marker := oss.Marker("")
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lor, err := s.Store.ListObjects(oss.Prefix(s.Prefix), marker, oss.MaxKeys(1000))
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range lor.Objects {
			if obj.Key == "" || !constants.IsDataFile(obj.Key) {
				continue
			}
			body, err := s.read(obj.Key)
			if err != nil {
				return nil, err
			}
			out[strings.TrimPrefix(obj.Key, s.Prefix)] = body
		}
		if !lor.IsTruncated {
			break
		}
		marker = oss.Marker(lor.NextMarker)
	}
	return out, nil
}

func (s *OSSSource) read(key string) ([]byte, error) {
	rc, err := s.Store.GetObject(key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return body, nil
}
