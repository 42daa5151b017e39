package server

import (
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// uploadImage stores a single trade screenshot under a per-day directory and
// returns the path it will be served from.
func (s *Server) uploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded."})
		return
	}

	day := time.Now().Format("2006-01-02")
	name := fmt.Sprintf("image-%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(file.Filename))
	dest := filepath.Join(s.cfg.Upload.Dir, day, name)

	if err := c.SaveUploadedFile(file, dest); err != nil {
		s.logger.Error("Failed to save uploaded file", zap.String("name", file.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "File uploaded successfully",
		"filePath":     fmt.Sprintf("/uploads/%s/%s", day, name),
		"originalName": file.Filename,
	})
}
