package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/interface/http/dto"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
	"github.com/ignatzorin/web3-freelance/internal/storage"
)

// multipartOverhead - запас на заголовки multipart сверх размера самого файла.
const multipartOverhead = 1 << 20

type FileHandler struct {
	storage      *storage.FileStorage
	publicPrefix string
}

func NewFileHandler(fs *storage.FileStorage, publicPrefix string) *FileHandler {
	return &FileHandler{storage: fs, publicPrefix: publicPrefix}
}

// Upload обрабатывает POST /api/upload-file с полем формы file.
func (h *FileHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.storage.MaxUploadBytes()+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Validation("File is required in form field 'file' and must not exceed the upload limit"))
		return
	}
	if header.Size > h.storage.MaxUploadBytes() {
		response.Error(c, apperror.Validation("File is too large"))
		return
	}

	f, err := header.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	stored, err := h.storage.Save(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.UploadResponse{
		Message:  "File uploaded successfully",
		FileName: stored.Name,
		FileURL:  h.publicPrefix + stored.Name,
	})
}

// Read отдаёт ранее загруженный файл как вложение.
func (h *FileHandler) Read(c *gin.Context) {
	name := c.Param("name")
	path, mime, err := h.storage.Locate(name)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", mime)
	c.FileAttachment(path, name)
}
