package middleware

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, files ...filePart) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="images"; filename="%s"`, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("x"), f.size))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

type filePart struct {
	name        string
	contentType string
	size        int
}

func runUploadMiddleware(t *testing.T, allowed []string, req *http.Request) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	reached := false
	router.POST("/", ValidateImages(allowed), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec, reached
}

func TestValidateImages_AcceptsValidBatch(t *testing.T) {
	req := uploadRequest(t,
		filePart{"a.jpg", "image/jpeg", 128},
		filePart{"b.png", "image/png", 128},
	)
	rec, reached := runUploadMiddleware(t, JPEGAndPNG, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestValidateImages_TooManyFiles(t *testing.T) {
	files := make([]filePart, 6)
	for i := range files {
		files[i] = filePart{fmt.Sprintf("f%d.jpg", i), "image/jpeg", 16}
	}
	rec, reached := runUploadMiddleware(t, JPEGAndPNG, uploadRequest(t, files...))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "Maximum 5 images allowed")
}

func TestValidateImages_WrongType(t *testing.T) {
	rec, reached := runUploadMiddleware(t, JPEGAndPNG,
		uploadRequest(t, filePart{"a.gif", "image/gif", 16}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, reached)
}

func TestValidateImages_WebpOnlyForMinIO(t *testing.T) {
	rec, _ := runUploadMiddleware(t, JPEGAndPNG,
		uploadRequest(t, filePart{"a.webp", "image/webp", 16}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, reached := runUploadMiddleware(t, MinIOTypes,
		uploadRequest(t, filePart{"a.webp", "image/webp", 16}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestValidateImages_OversizeFile(t *testing.T) {
	rec, reached := runUploadMiddleware(t, JPEGAndPNG,
		uploadRequest(t, filePart{"big.jpg", "image/jpeg", maxImageSize + 1}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "big.jpg is too large")
}

func TestValidateImages_PassesThroughWithoutFiles(t *testing.T) {
	// No multipart body at all.
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	_, reached := runUploadMiddleware(t, JPEGAndPNG, req)
	assert.True(t, reached)

	// Multipart body with text fields only.
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("nickname", "Batman"))
	require.NoError(t, w.Close())
	req = httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, reached = runUploadMiddleware(t, JPEGAndPNG, req)
	assert.True(t, reached)
}
