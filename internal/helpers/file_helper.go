package helpers

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"TrailGuide/internal/models"
)

var assetTypesByExtension = map[string]string{
	"jpg":  models.AssetTypeImage,
	"jpeg": models.AssetTypeImage,
	"png":  models.AssetTypeImage,
	"gif":  models.AssetTypeImage,
	"mp3":  models.AssetTypeAudio,
	"m4a":  models.AssetTypeAudio,
	"mp4":  models.AssetTypeVideo,
	"mov":  models.AssetTypeVideo,
	"vtt":  models.AssetTypeVideoTextTrack,
	"pdf":  models.AssetTypePDF,
}

func GetFileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != "" {
		return ext[1:]
	}
	return "unknown"
}

// DetectAssetType maps a file extension to an asset type. The second result is
// false when the extension is not recognised.
func DetectAssetType(fileName string) (string, bool) {
	assetType, ok := assetTypesByExtension[GetFileType(fileName)]
	return assetType, ok
}

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFileName reduces a client supplied name to a safe base name.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unsafeFileNameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return "file"
	}
	return name
}

// SaveFileAndComputeChecksum copies src to destinationPath and returns the
// number of bytes written together with their SHA-1 checksum.
func SaveFileAndComputeChecksum(src io.Reader, destinationPath string) (size int64, sha1sum string, err error) {
	dst, err := os.Create(destinationPath)
	if err != nil {
		return 0, "", err
	}
	defer func() {
		if closeErr := dst.Close(); err == nil {
			err = closeErr
		}
	}()

	hasher := sha1.New()
	writer := io.MultiWriter(dst, hasher)

	size, err = io.Copy(writer, src)
	if err != nil {
		return 0, "", err
	}
	return size, hex.EncodeToString(hasher.Sum(nil)), nil
}

// DeleteFile removes path. A file that is already gone is not an error.
func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

var contentTypes = map[string]map[string]string{
	models.AssetTypeImage:          {"jpg": "image/jpeg", "jpeg": "image/jpeg", "png": "image/png", "gif": "image/gif"},
	models.AssetTypeAudio:          {"mp3": "audio/mp3", "m4a": "audio/m4a"},
	models.AssetTypeVideo:          {"mp4": "video/mp4", "mov": "video/quicktime"},
	models.AssetTypeVideoTextTrack: {"vtt": "text/vtt"},
	models.AssetTypePDF:            {"pdf": "application/pdf"},
}

// ContentTypeFor picks the Content-Type served for an asset's bytes.
func ContentTypeFor(assetType, fileName string) string {
	if ct, ok := contentTypes[assetType][GetFileType(fileName)]; ok {
		return ct
	}
	return "application/octet-stream"
}
