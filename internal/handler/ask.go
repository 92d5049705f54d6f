package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"queryx/internal/model"
	"queryx/internal/service"
)

// AskHandler adapts HTTP input to the ask service and its answers back to
// JSON. Past boundary validation both endpoints always answer 200.
type AskHandler struct {
	svc *service.AskService
}

// NewAskHandler creates the ask handler.
func NewAskHandler(svc *service.AskService) *AskHandler {
	return &AskHandler{svc: svc}
}

// AskText godoc
// @Summary      Answer a text question
// @Description  Builds a prompt from level/style/language and asks the model. Always answers 200 once the body validates; provider failures surface as a fallback sentence.
// @Accept       json
// @Produce      json
// @Param        request  body      model.AskTextRequest  true  "question + options"
// @Success      200      {object}  model.AnswerResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /ask-text [post]
func (h *AskHandler) AskText(c *gin.Context) {
	var req model.AskTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}
	req.ApplyDefaults()

	c.JSON(http.StatusOK, h.svc.AskText(c.Request.Context(), &req))
}

// AskImage godoc
// @Summary      Answer a photographed question
// @Description  Sends the uploaded image with a restate-then-solve prompt. Options arrive as form fields (query fallback). Always answers 200 once the form validates.
// @Accept       multipart/form-data
// @Produce      json
// @Param        file      formData  file    true   "question image"
// @Param        level     formData  string  false  "basic|advanced (default basic)"
// @Param        style     formData  string  false  "detailed|short (default detailed)"
// @Param        language  formData  string  false  "english|hinglish (default hinglish)"
// @Success      200       {object}  model.AnswerResponse
// @Failure      400       {object}  model.ErrorResponse
// @Router       /ask-image [post]
func (h *AskHandler) AskImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    40001,
			Message: "Invalid file",
			Detail:  err.Error(),
		})
		return
	}

	level, err := model.ParseLevel(formOrQuery(c, "level"))
	if err != nil {
		badOption(c, err)
		return
	}
	style, err := model.ParseStyle(formOrQuery(c, "style"))
	if err != nil {
		badOption(c, err)
		return
	}
	language, err := model.ParseLanguage(formOrQuery(c, "language"))
	if err != nil {
		badOption(c, err)
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    40003,
			Message: "Failed to open file",
			Detail:  err.Error(),
		})
		return
	}
	defer src.Close()

	img, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    40003,
			Message: "Failed to read file",
			Detail:  err.Error(),
		})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	req := &model.AskImageRequest{
		Image:    img,
		MimeType: mimeType,
		Level:    level,
		Style:    style,
		Language: language,
	}

	c.JSON(http.StatusOK, h.svc.AskImage(c.Request.Context(), req))
}

// formOrQuery reads an option from the form body first, then the query
// string.
func formOrQuery(c *gin.Context, key string) string {
	if v := c.PostForm(key); v != "" {
		return v
	}
	return c.Query(key)
}

func badOption(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Code:    40002,
		Message: "Invalid option",
		Detail:  err.Error(),
	})
}
