package utils

import (
	"fmt"
	"medflow-service/internal/pkg/constvars"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateImageID() string {
	return uuid.NewString()
}

// GenerateImageObjectName builds the storage object name for an uploaded
// image, grouping objects by image type and keeping the original extension.
func GenerateImageObjectName(imageType, imageID, originalFilename string) string {
	fileExtension := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("%s/%s%s", imageType, imageID, fileExtension)
}
