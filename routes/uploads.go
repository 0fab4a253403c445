package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveUploadedFile stores an optional multipart file under uploadDir with a
// generated name and returns its path. Returns "" when the field is absent.
func saveUploadedFile(c *gin.Context, field, uploadDir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// Absent file is not an error; the payload value is used instead.
		return "", nil
	}

	dst := filepath.Join(uploadDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}
