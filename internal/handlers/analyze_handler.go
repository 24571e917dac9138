package handlers

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
)

var allowedMIMETypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

type AnalyzeHandler struct {
	gemini      services.GeminiService
	media       services.MediaService // nil when hosting is not configured
	storage     services.TempStorage
	probe       services.PDFProbe
	prompts     *services.PromptBuilder
	maxFileSize int64
}

func NewAnalyzeHandler(
	gemini services.GeminiService,
	media services.MediaService,
	storage services.TempStorage,
	probe services.PDFProbe,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		gemini:      gemini,
		media:       media,
		storage:     storage,
		probe:       probe,
		prompts:     services.NewPromptBuilder(),
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: "file is required",
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if _, ok := allowedMIMETypes[contentType]; !ok {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(models.ErrorResponse{
			Detail: "Only PDF/DOC/DOCX are supported",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(models.ErrorResponse{
			Detail: "File too large",
		})
	}

	company := c.FormValue("company")
	title := c.FormValue("title")
	description := c.FormValue("description")

	tempPath, cleanup, err := h.storage.Save(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Detail: fmt.Sprintf("failed to store upload: %v", err),
		})
	}
	defer cleanup()

	ctx := c.UserContext()

	// Best-effort hosting step. Failure degrades to null URLs.
	var pdfURL, previewURL *string
	if h.media != nil {
		withPreview := true
		if contentType == "application/pdf" {
			if pages, err := h.probe.PageCount(tempPath); err != nil {
				log.Printf("⚠️  Failed to probe PDF %s: %v\n", fileHeader.Filename, err)
			} else if pages == 0 {
				withPreview = false
			}
		}

		asset, err := h.media.Upload(ctx, tempPath, withPreview)
		if err != nil {
			log.Printf("⚠️  Media hosting failed, continuing without URLs: %v\n", err)
		} else {
			pdfURL = &asset.PDFURL
			if asset.PreviewURL != "" {
				previewURL = &asset.PreviewURL
			}
		}
	}

	prompt := h.prompts.BuildResumeFeedbackPrompt(company, title, description)

	text, err := h.gemini.AnalyzeDocument(ctx, tempPath, fileHeader.Filename, contentType, prompt)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{
			Detail: fmt.Sprintf("analysis failed: %v", err),
		})
	}

	feedback := parseFeedback(text)

	return c.JSON(models.AnalyzeResponse{
		Feedback:   feedback,
		PDFURL:     pdfURL,
		PreviewURL: previewURL,
	})
}

// parseFeedback relays the model output as-is when it is valid JSON and
// wraps it as {"raw": <text>} otherwise, so callers can debug the output.
func parseFeedback(text string) json.RawMessage {
	var parsed json.RawMessage
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		raw, _ := json.Marshal(fiber.Map{"raw": text})
		return raw
	}

	if err := models.ValidateFeedback(parsed); err != nil {
		log.Printf("⚠️  Feedback shape check failed: %v\n", err)
	}

	return parsed
}
