package handlers

import (
	"context"
	"net/http"
	"time"

	"url2md-go/pkg/convert"
	"url2md-go/pkg/models"

	"github.com/gin-gonic/gin"
)

// ConvertService runs one conversion request end to end.
type ConvertService interface {
	Handle(ctx context.Context, rawURL string, opts models.ConvertOptions) (models.ConversionResult, error)
}

// ConvertPost handles POST /convert with a JSON body.
func ConvertPost(service ConvertService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ConvertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, convert.Wrap(convert.KindMissingURL, err, "request body must carry a url field"))
			return
		}

		opts, err := models.ParseOptions(req.Options)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ConversionResult{
				Success:     false,
				Error:       "invalid options: " + err.Error(),
				ProcessedAt: time.Now().UTC(),
			})
			return
		}

		respond(c, service, req.URL, opts)
	}
}

// ConvertGet handles GET /convert?url=<URL>, for manual and browser
// testing. Semantics match the POST form with default options.
func ConvertGet(service ConvertService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawURL := c.Query("url")
		if rawURL == "" {
			badRequest(c, convert.Errf(convert.KindMissingURL, "url query parameter is required"))
			return
		}

		respond(c, service, rawURL, models.DefaultOptions())
	}
}

func respond(c *gin.Context, service ConvertService, rawURL string, opts models.ConvertOptions) {
	result, err := service.Handle(c.Request.Context(), rawURL, opts)
	if err != nil {
		c.JSON(convert.StatusOf(err), result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func badRequest(c *gin.Context, err *convert.Error) {
	c.JSON(http.StatusBadRequest, models.ConversionResult{
		Success:     false,
		Error:       err.Error(),
		ProcessedAt: time.Now().UTC(),
	})
}
