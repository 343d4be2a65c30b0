package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/pkg/apperror"
	"github.com/Valentina9990/top-talent/pkg/utils"
)

type FileType string

const (
	FileImage FileType = "image"
	FileVideo FileType = "video"

	maxImageSize = 10 * 1024 * 1024
	maxVideoSize = 100 * 1024 * 1024
)

var allowedExtensions = map[FileType][]string{
	FileImage: {"jpg", "jpeg", "png", "gif", "webp"},
	FileVideo: {"mp4", "webm", "mov", "avi", "mkv"},
}

var mimeTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"mov":  "video/quicktime",
	"avi":  "video/x-msvideo",
	"mkv":  "video/x-matroska",
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// PresignRequest is the body of POST /uploads/presigned-url.
type PresignRequest struct {
	FileType    FileType `json:"file_type" binding:"required,oneof=image video"`
	FileName    string   `json:"file_name" binding:"required,max=255"`
	FileSize    int64    `json:"file_size" binding:"required,gt=0"`
	ContentType string   `json:"content_type"`
}

type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
}

func extension(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(fileName), "."))
}

// ValidateFile checks extension and size for the file type. It returns a
// field→message map, empty when the file is acceptable.
func ValidateFile(ft FileType, fileName string, size int64) map[string]string {
	fields := map[string]string{}
	allowed, ok := allowedExtensions[ft]
	if !ok {
		fields["file_type"] = "Must be one of: image video"
		return fields
	}

	ext := extension(fileName)
	found := false
	for _, a := range allowed {
		if a == ext {
			found = true
			break
		}
	}
	if !found {
		fields["file_name"] = "File extension not allowed. Allowed: " + strings.Join(allowed, ", ")
	}

	maxSize := int64(maxImageSize)
	if ft == FileVideo {
		maxSize = maxVideoSize
	}
	if size > maxSize {
		fields["file_size"] = fmt.Sprintf("File too large. Maximum size: %dMB", maxSize/(1024*1024))
	}
	return fields
}

// ContentTypeFor guesses the MIME type from the file extension.
func ContentTypeFor(fileName string) string {
	if ct, ok := mimeTypes[extension(fileName)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// SanitizeFileName replaces anything outside [a-zA-Z0-9.-] with '_'.
func SanitizeFileName(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// BuildKey lays objects out as images|videos/<userID>/<unixMillis>-<suffix>-<name>.
func BuildKey(ft FileType, userID, fileName string, now time.Time, suffix string) string {
	folder := "images"
	if ft == FileVideo {
		folder = "videos"
	}
	userPath := ""
	if userID != "" {
		userPath = userID + "/"
	}
	return fmt.Sprintf("%s/%s%d-%s-%s", folder, userPath, now.UnixMilli(), suffix, SanitizeFileName(fileName))
}

// KeyFromURL recovers the object key from a URL produced by store.PublicURL,
// or from any URL whose path is /<key> or /<bucket>/<key>.
func KeyFromURL(store ObjectStorage, raw string) (string, bool) {
	prefix := store.PublicURL("")
	if strings.HasPrefix(raw, prefix) {
		key := strings.TrimPrefix(raw, prefix)
		return key, key != ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	key := strings.TrimPrefix(u.Path, "/")
	key = strings.TrimPrefix(key, store.Bucket()+"/")
	return key, key != ""
}

// UploadService issues presigned upload URLs and deletes uploaded objects.
type UploadService struct {
	store  ObjectStorage
	expiry time.Duration
	now    func() time.Time
}

func NewUploadService(store ObjectStorage, expiry time.Duration) *UploadService {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &UploadService{store: store, expiry: expiry, now: time.Now}
}

func (s *UploadService) CreatePresignedUpload(ctx context.Context, p *common.Principal, req PresignRequest) (*PresignedUpload, error) {
	if err := common.RequirePrincipal(p); err != nil {
		return nil, err
	}
	if fields := ValidateFile(req.FileType, req.FileName, req.FileSize); len(fields) > 0 {
		return nil, apperror.Validation("", fields)
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = ContentTypeFor(req.FileName)
	}

	key := BuildKey(req.FileType, p.UserID, req.FileName, s.now(), utils.RandomSuffix(6))
	uploadURL, err := s.store.PresignPut(ctx, key, contentType, req.FileSize, s.expiry)
	if err != nil {
		return nil, apperror.Persistence("Could not generate upload URL", err)
	}

	return &PresignedUpload{
		UploadURL: uploadURL,
		FileURL:   s.store.PublicURL(key),
		Key:       key,
	}, nil
}

// ownsKey reports whether key sits directly under one of userID's folders.
func ownsKey(key, userID string) bool {
	if userID == "" || path.Clean(key) != key {
		return false
	}
	return strings.HasPrefix(key, "images/"+userID+"/") || strings.HasPrefix(key, "videos/"+userID+"/")
}

// DeleteFile removes an object the caller uploaded. Keys are namespaced by
// user id, so a key outside the caller's folders belongs to someone else.
func (s *UploadService) DeleteFile(ctx context.Context, p *common.Principal, fileURL string) error {
	if err := common.RequirePrincipal(p); err != nil {
		return err
	}
	key, ok := KeyFromURL(s.store, fileURL)
	if !ok {
		return apperror.Validation("Invalid file URL", map[string]string{"url": "Invalid file URL"})
	}
	if !ownsKey(key, p.UserID) {
		return apperror.Forbidden("You do not have permission to delete this file")
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return apperror.Persistence("Could not delete file", err)
	}
	return nil
}
