package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"wedding-invite/internal/domain/entity"
	"wedding-invite/pkg/utils"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// MediaStorageClient serves the gallery out of a Cloud Storage bucket. All
// gallery objects live under one prefix and are publicly readable.
type MediaStorageClient struct {
	client     *storage.Client
	bucketName string
	prefix     string
}

func NewMediaStorageClient(ctx context.Context, bucketName, prefix string, opts ...option.ClientOption) (*MediaStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &MediaStorageClient{
		client:     client,
		bucketName: bucketName,
		prefix:     prefix,
	}, nil
}

func (c *MediaStorageClient) ListMedia(ctx context.Context, limit, offset int) ([]entity.MediaItem, int64, error) {
	it := c.client.Bucket(c.bucketName).Objects(ctx, &storage.Query{Prefix: c.prefix})

	all := make([]entity.MediaItem, 0)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list gallery objects: %v", err)
		}
		if attrs.Name == c.prefix {
			continue
		}

		all = append(all, entity.MediaItem{
			Name:        strings.TrimPrefix(attrs.Name, c.prefix),
			URL:         fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, attrs.Name),
			ContentType: attrs.ContentType,
			Size:        attrs.Size,
			UploadedAt:  attrs.Created,
		})
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].UploadedAt.After(all[j].UploadedAt)
	})

	total := int64(len(all))
	start, end := utils.SliceWindow(len(all), limit, offset)
	return all[start:end], total, nil
}

func (c *MediaStorageClient) UploadMedia(ctx context.Context, file io.Reader, contentType string) (string, error) {
	filename := fmt.Sprintf("%s%s-%s", c.prefix, uuid.New().String(), time.Now().Format("20060102150405"))

	switch contentType {
	case "image/jpeg", "image/jpg":
		filename += ".jpg"
	case "image/png":
		filename += ".png"
	case "image/gif":
		filename += ".gif"
	case "video/mp4":
		filename += ".mp4"
	case "video/webm":
		filename += ".webm"
	default:
		return "", fmt.Errorf("unsupported media type: %s", contentType)
	}

	obj := c.client.Bucket(c.bucketName).Object(filename)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400" // 1 day caching

	if _, err := io.Copy(wc, file); err != nil {
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, filename), nil
}

func (c *MediaStorageClient) Close() error {
	return c.client.Close()
}
