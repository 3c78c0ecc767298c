package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pixvault/pixvault-backend/internal/adapter/handler/dto/request"
	"github.com/pixvault/pixvault-backend/internal/adapter/handler/dto/response"
	"github.com/pixvault/pixvault-backend/internal/domain"
	"github.com/pixvault/pixvault-backend/internal/domain/valueobject"
	"github.com/pixvault/pixvault-backend/internal/pkg/httputil"
	"github.com/pixvault/pixvault-backend/internal/usecase/image"
)

const uploadFieldName = "images"

type ImageHandler struct {
	imageSvc       ImageService
	deletionSvc    DeletionService
	maxUploadBytes int64
}

func NewImageHandler(imageSvc ImageService, deletionSvc DeletionService, maxUploadBytes int64) *ImageHandler {
	return &ImageHandler{
		imageSvc:       imageSvc,
		deletionSvc:    deletionSvc,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload accepts a multipart batch under the "images" field. The whole
// request is rejected when a file is not an image content type or
// exceeds the size ceiling; per-file format and dedup outcomes are
// reported in the response array.
func (h *ImageHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}

	headers := form.File[uploadFieldName]
	if len(headers) == 0 {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", domain.ErrNoFilesProvided.Error())
		return
	}

	files := make([]image.UploadFile, 0, len(headers))
	for _, header := range headers {
		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_TYPE", domain.ErrNotAnImage.Error())
			return
		}
		if header.Size > h.maxUploadBytes {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "FILE_TOO_LARGE", domain.ErrFileTooLarge.Error())
			return
		}

		data, err := readMultipartFile(header)
		if err != nil {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "could not read uploaded file")
			return
		}

		files = append(files, image.UploadFile{
			Filename:    header.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	outcomes, err := h.imageSvc.UploadBatch(c.Request.Context(), httputil.GetUserID(c), files)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.OutcomesToResponse(outcomes))
}

func (h *ImageHandler) ListAll(c *gin.Context) {
	images, err := h.imageSvc.ListAll(c.Request.Context())
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ImagesFromEntities(images))
}

func (h *ImageHandler) ListMine(c *gin.Context) {
	h.listByOwner(c, httputil.GetUserID(c))
}

func (h *ImageHandler) ListByUser(c *gin.Context) {
	userUID, err := uuid.Parse(c.Param("user_uid"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid user uid")
		return
	}

	h.listByOwner(c, userUID)
}

func (h *ImageHandler) listByOwner(c *gin.Context, owner uuid.UUID) {
	order, err := valueobject.ParseSortOrder(c.Query("order"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ORDER", "order must be asc or desc")
		return
	}

	images, err := h.imageSvc.ListByOwner(c.Request.Context(), owner, order)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ImagesFromEntities(images))
}

// GetByKey looks a record up by one of its variant keys. The quality
// selector picks which key column is matched; it defaults to high.
func (h *ImageHandler) GetByKey(c *gin.Context) {
	key := c.Param("key")

	qualityParam := c.Query("quality")
	if qualityParam == "" {
		qualityParam = valueobject.QualityHigh.String()
	}
	quality, err := valueobject.ParseQuality(qualityParam)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_QUALITY", "quality must be low or high")
		return
	}

	img, err := h.imageSvc.GetByVariantKey(c.Request.Context(), key, quality)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "no image found for this key")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ImageFromEntity(img))
}

func (h *ImageHandler) Delete(c *gin.Context) {
	var req request.DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_BODY", "key_low and key_high are required")
		return
	}

	err := h.deletionSvc.DeleteByKeys(c.Request.Context(), httputil.GetUserID(c), req.KeyLow, req.KeyHigh)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "no image found for these keys")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.DeleteResponse{Success: true})
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
