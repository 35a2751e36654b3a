package transport

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/anime-shed/text-insight-go/internal/config"
	apperrors "github.com/anime-shed/text-insight-go/internal/errors"
	"github.com/anime-shed/text-insight-go/internal/logger"
	"github.com/anime-shed/text-insight-go/internal/service"
	"github.com/anime-shed/text-insight-go/pkg/models"
	"github.com/anime-shed/text-insight-go/pkg/validation"
)

const (
	serviceName    = "Text Insight Service"
	serviceVersion = "1.0.0"
)

// NewHandler wires the HTTP routes over the analysis service
func NewHandler(svc service.AnalysisService, cfg *config.Config) http.Handler {
	r := gin.Default()

	// Add middleware
	r.Use(
		corsMiddleware(cfg.CORSOrigins),
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	// Configure routes
	r.GET("/", serviceInfo)
	r.GET("/health", healthCheck)

	api := r.Group("/api/v1")
	api.POST("/analyze/text", analyzeText(svc))
	api.POST("/analyze/file", analyzeFile(svc))
	api.POST("/analyze/batch", analyzeBatch(svc))
	api.GET("/models/info", modelsInfo(svc))

	return r
}

func analyzeText(svc service.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		var req models.TextAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"ip": c.ClientIP(),
			}).Error("Invalid request format")
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"analysis_type": req.AnalysisType,
			"format_hint":   req.FormatHint,
			"text_length":   len(req.Text),
			"ip":            c.ClientIP(),
		}).Info("Processing text analysis request")

		response := svc.AnalyzeOne(c.Request.Context(), req.Text, req.AnalysisType, req.FormatHint)

		logger.WithFields(logrus.Fields{
			"analysis_type":      response.AnalysisType,
			"success":            response.Success,
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		}).Info("Text analysis completed")

		c.JSON(statusForResponse(response), response)
	}
}

func analyzeFile(svc service.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			respondError(c, http.StatusBadRequest, "missing uploaded file", err)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, http.StatusBadRequest, "failed to open uploaded file", err)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			respondError(c, http.StatusBadRequest, "failed to read uploaded file", err)
			return
		}

		analysisType := models.AnalysisType(c.DefaultQuery("analysis_type", string(models.AnalysisTypeComprehensive)))
		formatHint := models.DataFormat(c.DefaultQuery("format_type", string(models.FormatAuto)))
		filename := validation.SanitizeFilename(fileHeader.Filename)

		logger.WithFields(logrus.Fields{
			"filename":      filename,
			"file_size":     fileHeader.Size,
			"analysis_type": analysisType,
			"format_hint":   formatHint,
		}).Info("Processing file analysis request")

		response := svc.AnalyzeOne(c.Request.Context(), string(content), analysisType, formatHint)
		if response.Metadata != nil {
			response.Metadata.Filename = filename
			response.Metadata.FileSize = fileHeader.Size
		}

		c.JSON(statusForResponse(response), response)
	}
}

func analyzeBatch(svc service.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		var req models.BatchAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"ip": c.ClientIP(),
			}).Error("Invalid batch request format")
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"analysis_type": req.AnalysisType,
			"items":         len(req.Texts),
			"ip":            c.ClientIP(),
		}).Info("Processing batch analysis request")

		result, err := svc.AnalyzeBatch(c.Request.Context(), req.Texts, req.AnalysisType)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "batch analysis rejected", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"total_items":        result.TotalItems,
			"successful_items":   result.SuccessfulItems,
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		}).Info("Batch analysis completed")

		c.JSON(http.StatusOK, result)
	}
}

func modelsInfo(svc service.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Capabilities())
	}
}

func serviceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceInfo{
		Service: serviceName,
		Version: serviceVersion,
		Status:  "healthy",
		Endpoints: map[string]string{
			"health":        "/health",
			"analyze_text":  "/api/v1/analyze/text",
			"analyze_file":  "/api/v1/analyze/file",
			"analyze_batch": "/api/v1/analyze/batch",
			"models_info":   "/api/v1/models/info",
		},
	})
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   serviceVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// statusForResponse maps a failed analysis response to the HTTP status of
// its error kind; successful responses are plain 200s.
func statusForResponse(response models.AnalysisResponse) int {
	if response.Success {
		return http.StatusOK
	}

	switch apperrors.ErrorType(response.ErrorKind) {
	case apperrors.ErrorTypeInvalidInput,
		apperrors.ErrorTypeUnsupportedType,
		apperrors.ErrorTypeEmptyBatch,
		apperrors.ErrorTypeValidation:
		return http.StatusBadRequest
	case apperrors.ErrorTypeFormatParse:
		return http.StatusUnprocessableEntity
	case apperrors.ErrorTypeBatchTooLarge:
		return http.StatusRequestEntityTooLarge
	case apperrors.ErrorTypeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Middleware and helper functions
func corsMiddleware(origins []string) gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if allowAll {
				c.Header("Access-Control-Allow-Origin", "*")
			} else if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
			}
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			respondError(c, apperrors.GetStatusCode(err.Err), "request processing failed", err)
		}
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	// Log the error with context
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
