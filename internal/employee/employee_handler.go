package employee

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"employee-manager/internal/shared/apperror"
	"employee-manager/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{svc: service, logger: l}
}

func writeError(c *gin.Context, err error) {
	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		response.ValidationFailed(c, validationErr.Errors)
		return
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch appErr.HTTPStatus {
		case http.StatusBadRequest:
			response.BadRequest(c, appErr.Message)
		case http.StatusNotFound:
			response.NotFound(c, "Employee Not Found", appErr.Message)
		default:
			title := "Internal Server Error"
			if appErr.Code == apperror.CodeUpdateFailed {
				title = "Update Failed"
			}
			response.ServerError(c, title, appErr.Error())
		}
		return
	}

	response.ServerError(c, "Internal Server Error", "An unexpected error occurred")
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(DefaultPerPage)))

	params := QueryParams{
		Search:        c.Query("search"),
		Department:    c.Query("department"),
		SortBy:        c.DefaultQuery("sort_by", "name"),
		SortDirection: c.DefaultQuery("sort_direction", "asc"),
		Page:          page,
		PerPage:       perPage,
	}

	res, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}

	meta := response.NewPaginationMeta(res.Total, res.Page, res.PerPage, len(res.Items))
	response.Paginate(c, res.Items, meta)
}

func (h *Handler) Create(c *gin.Context) {
	input, err := h.bindPayload(c)
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    res,
		"message": "Employee created successfully",
	})
}

func (h *Handler) Show(c *gin.Context) {
	res, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

func (h *Handler) Update(c *gin.Context) {
	input, err := h.bindPayload(c)
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := h.svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    res,
		"message": "Employee updated successfully",
	})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	upload, err := h.formFile(c, "profile_photo", "profilePhoto")
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := h.svc.UploadPhoto(c.Request.Context(), c.Param("id"), upload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    res,
		"message": "Profile photo uploaded successfully",
	})
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	res, err := h.svc.DeletePhoto(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    res,
		"message": "Profile photo deleted successfully",
	})
}

// bindPayload decodes either a JSON body or a multipart form into the loose
// map the normalizer and validator work on. Multipart file parts become
// *PhotoUpload values under their original field name.
func (h *Handler) bindPayload(c *gin.Context) (map[string]any, error) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return h.bindMultipart(c)
	}

	input := make(map[string]any)
	if err := c.ShouldBindJSON(&input); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "Request body must be valid JSON", http.StatusBadRequest)
	}
	return input, nil
}

func (h *Handler) bindMultipart(c *gin.Context) (map[string]any, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "Request body must be a valid multipart form", http.StatusBadRequest)
	}

	input := make(map[string]any, len(form.Value)+len(form.File))
	for key, values := range form.Value {
		if len(values) > 0 {
			input[key] = values[0]
		}
	}

	for _, key := range []string{"profile_photo", "profilePhoto"} {
		headers, ok := form.File[key]
		if !ok || len(headers) == 0 {
			continue
		}
		upload, err := readUpload(headers[0])
		if err != nil {
			return nil, err
		}
		input[key] = upload
		break
	}

	return input, nil
}

func (h *Handler) formFile(c *gin.Context, keys ...string) (*PhotoUpload, error) {
	for _, key := range keys {
		header, err := c.FormFile(key)
		if err != nil {
			continue
		}
		return readUpload(header)
	}
	return nil, nil
}

func readUpload(header *multipart.FileHeader) (*PhotoUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "Failed to read uploaded file", http.StatusBadRequest)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "Failed to read uploaded file", http.StatusBadRequest)
	}

	return &PhotoUpload{
		Data:        data,
		Ext:         strings.TrimPrefix(filepath.Ext(header.Filename), "."),
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, nil
}
