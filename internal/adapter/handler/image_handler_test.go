package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pixvault/pixvault-backend/internal/adapter/handler"
	"github.com/pixvault/pixvault-backend/internal/domain"
	"github.com/pixvault/pixvault-backend/internal/domain/entity"
	"github.com/pixvault/pixvault-backend/internal/domain/valueobject"
	"github.com/pixvault/pixvault-backend/internal/mocks"
	"github.com/pixvault/pixvault-backend/internal/usecase/image"
)

const testMaxUploadBytes = 15 << 20

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type multipartFile struct {
	fieldName   string
	fileName    string
	contentType string
	content     []byte
}

func createMultipartRequest(t *testing.T, url string, files []multipartFile) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.fieldName, f.fileName))
		h.Set("Content-Type", f.contentType)

		part, err := writer.CreatePart(h)
		require.NoError(t, err)

		_, err = part.Write(f.content)
		require.NoError(t, err)
	}

	err := writer.Close()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func newHandler(t *testing.T) (*handler.ImageHandler, *mocks.MockImageService, *mocks.MockDeletionService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	imageSvc := mocks.NewMockImageService(ctrl)
	deletionSvc := mocks.NewMockDeletionService(ctrl)
	h := handler.NewImageHandler(imageSvc, deletionSvc, testMaxUploadBytes)
	return h, imageSvc, deletionSvc
}

func TestImageHandler_Upload(t *testing.T) {
	jpegHeader := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	t.Run("uploads batch and reports per-file outcomes", func(t *testing.T) {
		h, imageSvc, _ := newHandler(t)

		router := setupRouter()
		userID := uuid.New()
		router.POST("/images", func(c *gin.Context) {
			c.Set("user_id", userID)
			h.Upload(c)
		})

		created := entity.NewImage(userID, "sha", "md5", "a-low.jpeg", "a-high.jpeg", false)
		imageSvc.EXPECT().UploadBatch(gomock.Any(), userID, gomock.Len(2)).Return([]image.FileOutcome{
			{Filename: "a.jpg", Status: image.OutcomeCreated, Image: created},
			{Filename: "b.jpg", Status: image.OutcomeDuplicate, Image: created},
		}, nil)

		req := createMultipartRequest(t, "/images", []multipartFile{
			{fieldName: "images", fileName: "a.jpg", contentType: "image/jpeg", content: jpegHeader},
			{fieldName: "images", fileName: "b.jpg", contentType: "image/jpeg", content: jpegHeader},
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "created", resp[0]["status"])
		assert.Equal(t, "duplicate", resp[1]["status"])
		assert.NotNil(t, resp[0]["image"])
	})

	t.Run("returns error when no files are provided", func(t *testing.T) {
		h, _, _ := newHandler(t)

		router := setupRouter()
		router.POST("/images", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.Upload(c)
		})

		req := createMultipartRequest(t, "/images", []multipartFile{
			{fieldName: "other", fileName: "a.jpg", contentType: "image/jpeg", content: jpegHeader},
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "INVALID_FILE", resp["code"])
	})

	t.Run("rejects the whole request for a non-image content type", func(t *testing.T) {
		h, _, _ := newHandler(t)

		router := setupRouter()
		router.POST("/images", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.Upload(c)
		})

		req := createMultipartRequest(t, "/images", []multipartFile{
			{fieldName: "images", fileName: "a.jpg", contentType: "image/jpeg", content: jpegHeader},
			{fieldName: "images", fileName: "evil.pdf", contentType: "application/pdf", content: []byte("%PDF")},
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "INVALID_TYPE", resp["code"])
	})

	t.Run("rejects the whole request for an oversized file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		imageSvc := mocks.NewMockImageService(ctrl)
		deletionSvc := mocks.NewMockDeletionService(ctrl)
		h := handler.NewImageHandler(imageSvc, deletionSvc, 8)

		router := setupRouter()
		router.POST("/images", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.Upload(c)
		})

		req := createMultipartRequest(t, "/images", []multipartFile{
			{fieldName: "images", fileName: "big.jpg", contentType: "image/jpeg", content: []byte("way more than eight bytes")},
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "FILE_TOO_LARGE", resp["code"])
	})

	t.Run("returns internal error when the pipeline aborts", func(t *testing.T) {
		h, imageSvc, _ := newHandler(t)

		router := setupRouter()
		userID := uuid.New()
		router.POST("/images", func(c *gin.Context) {
			c.Set("user_id", userID)
			h.Upload(c)
		})

		imageSvc.EXPECT().UploadBatch(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("connection refused"))

		req := createMultipartRequest(t, "/images", []multipartFile{
			{fieldName: "images", fileName: "a.jpg", contentType: "image/jpeg", content: jpegHeader},
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestImageHandler_GetByKey(t *testing.T) {
	t.Run("defaults to the high quality key", func(t *testing.T) {
		h, imageSvc, _ := newHandler(t)

		router := setupRouter()
		router.GET("/images/key/:key", h.GetByKey)

		img := entity.NewImage(uuid.New(), "sha", "md5", "k-low.jpeg", "k-high.jpeg", false)
		imageSvc.EXPECT().GetByVariantKey(gomock.Any(), "k-high.jpeg", valueobject.QualityHigh).Return(img, nil)

		req := httptest.NewRequest(http.MethodGet, "/images/key/k-high.jpeg", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "k-high.jpeg", resp["key_high"])
	})

	t.Run("matches the low key when quality=low", func(t *testing.T) {
		h, imageSvc, _ := newHandler(t)

		router := setupRouter()
		router.GET("/images/key/:key", h.GetByKey)

		img := entity.NewImage(uuid.New(), "sha", "md5", "k-low.jpeg", "k-high.jpeg", false)
		imageSvc.EXPECT().GetByVariantKey(gomock.Any(), "k-low.jpeg", valueobject.QualityLow).Return(img, nil)

		req := httptest.NewRequest(http.MethodGet, "/images/key/k-low.jpeg?quality=low", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns error for an unknown quality", func(t *testing.T) {
		h, _, _ := newHandler(t)

		router := setupRouter()
		router.GET("/images/key/:key", h.GetByKey)

		req := httptest.NewRequest(http.MethodGet, "/images/key/k.jpeg?quality=medium", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "INVALID_QUALITY", resp["code"])
	})

	t.Run("returns not found for an unmatched key", func(t *testing.T) {
		h, imageSvc, _ := newHandler(t)

		router := setupRouter()
		router.GET("/images/key/:key", h.GetByKey)

		imageSvc.EXPECT().GetByVariantKey(gomock.Any(), "missing.jpeg", valueobject.QualityHigh).
			Return(nil, domain.ErrImageNotFound)

		req := httptest.NewRequest(http.MethodGet, "/images/key/missing.jpeg", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestImageHandler_List(t *testing.T) {
	t.Run("lists the requester's images", func(t *testing.T) {
		h, imageSvc, _ := newHandler(t)

		router := setupRouter()
		userID := uuid.New()
		router.GET("/images/me", func(c *gin.Context) {
			c.Set("user_id", userID)
			h.ListMine(c)
		})

		images := []entity.Image{*entity.NewImage(userID, "sha", "md5", "l.jpeg", "h.jpeg", false)}
		imageSvc.EXPECT().ListByOwner(gomock.Any(), userID, valueobject.SortDesc).Return(images, nil)

		req := httptest.NewRequest(http.MethodGet, "/images/me", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("passes the requested sort order through", func(t *testing.T) {
		h, imageSvc, _ := newHandler(t)

		router := setupRouter()
		userID := uuid.New()
		router.GET("/images/me", func(c *gin.Context) {
			c.Set("user_id", userID)
			h.ListMine(c)
		})

		imageSvc.EXPECT().ListByOwner(gomock.Any(), userID, valueobject.SortAsc).Return([]entity.Image{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/images/me?order=asc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns error for an unknown sort order", func(t *testing.T) {
		h, _, _ := newHandler(t)

		router := setupRouter()
		router.GET("/images/me", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.ListMine(c)
		})

		req := httptest.NewRequest(http.MethodGet, "/images/me?order=sideways", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "INVALID_ORDER", resp["code"])
	})

	t.Run("lists another user's images by uid", func(t *testing.T) {
		h, imageSvc, _ := newHandler(t)

		router := setupRouter()
		router.GET("/images/user/:user_uid", h.ListByUser)

		target := uuid.New()
		imageSvc.EXPECT().ListByOwner(gomock.Any(), target, valueobject.SortDesc).Return([]entity.Image{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/images/user/"+target.String(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns error for an invalid user uid", func(t *testing.T) {
		h, _, _ := newHandler(t)

		router := setupRouter()
		router.GET("/images/user/:user_uid", h.ListByUser)

		req := httptest.NewRequest(http.MethodGet, "/images/user/not-a-uuid", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "INVALID_ID", resp["code"])
	})
}

func TestImageHandler_Delete(t *testing.T) {
	deleteBody := `{"key_low":"k-low.jpeg","key_high":"k-high.jpeg"}`

	t.Run("deletes image successfully", func(t *testing.T) {
		h, _, deletionSvc := newHandler(t)

		router := setupRouter()
		userID := uuid.New()
		router.DELETE("/images", func(c *gin.Context) {
			c.Set("user_id", userID)
			h.Delete(c)
		})

		deletionSvc.EXPECT().DeleteByKeys(gomock.Any(), userID, "k-low.jpeg", "k-high.jpeg").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/images", strings.NewReader(deleteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, true, resp["success"])
	})

	t.Run("returns not found when no record matches the keys", func(t *testing.T) {
		h, _, deletionSvc := newHandler(t)

		router := setupRouter()
		userID := uuid.New()
		router.DELETE("/images", func(c *gin.Context) {
			c.Set("user_id", userID)
			h.Delete(c)
		})

		deletionSvc.EXPECT().DeleteByKeys(gomock.Any(), userID, "k-low.jpeg", "k-high.jpeg").
			Return(domain.ErrImageNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/images", strings.NewReader(deleteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns error for a body missing a key", func(t *testing.T) {
		h, _, _ := newHandler(t)

		router := setupRouter()
		router.DELETE("/images", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.Delete(c)
		})

		req := httptest.NewRequest(http.MethodDelete, "/images", strings.NewReader(`{"key_low":"only-low.jpeg"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "INVALID_BODY", resp["code"])
	})
}
