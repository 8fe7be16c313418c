package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxImageSize caps vision uploads at 5MB.
const maxImageSize = 5 * 1024 * 1024

// IdentifyProduct classifies an uploaded produce photo into a product name
// and quality grade. The body is the raw image bytes.
func IdentifyProduct(c *gin.Context) {
	if visionService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Vision service not available",
		})
		return
	}

	imageData, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImageSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Failed to read image data",
		})
		return
	}
	if len(imageData) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Image data is required",
		})
		return
	}
	if len(imageData) > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"success": false,
			"error":   "Image too large",
		})
		return
	}

	result, err := visionService.IdentifyProductFromImage(c.Request.Context(), imageData)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "Image classification failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
