package middleware

import (
	"fmt"
	"net/http"

	"superhero-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	// ImagesField is the multipart field name carrying uploads.
	ImagesField = "images"

	maxImageCount = 5
	maxImageSize  = 5 << 20 // 5 MiB
)

// JPEGAndPNG is the allowed upload set for the local backend.
// MinIOTypes additionally permits webp, which the hosted store can
// serve and transform.
var (
	JPEGAndPNG = []string{"image/jpeg", "image/png"}
	MinIOTypes = []string{"image/jpeg", "image/png", "image/webp"}
)

// ValidateImages rejects a bad upload batch before any file is
// persisted: more than 5 files, a file over 5 MiB or a media type
// outside the allowed set abort the whole request with 400.
func ValidateImages(allowedTypes []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = true
	}

	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			// Not a multipart body, or no files at all. Field
			// validation downstream reports whatever is missing.
			c.Next()
			return
		}

		files := form.File[ImagesField]
		if len(files) == 0 {
			c.Next()
			return
		}

		if len(files) > maxImageCount {
			response.Error(c, http.StatusBadRequest, "Maximum 5 images allowed")
			return
		}

		for _, file := range files {
			if !allowed[file.Header.Get("Content-Type")] {
				response.Error(c, http.StatusBadRequest, "Only JPG and PNG files are allowed")
				return
			}
			if file.Size > maxImageSize {
				response.Error(c, http.StatusBadRequest,
					fmt.Sprintf("File %s is too large (max 5MB)", file.Filename))
				return
			}
		}

		c.Next()
	}
}
