package server

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/arielf-camacho/cold-stream/scrabble"
	"github.com/arielf-camacho/cold-stream/sinks"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Error codes returned in ErrorResponse.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeInternal     = "INTERNAL_ERROR"
)

// PlayRequest is the body of POST /v1/play.
type PlayRequest struct {
	Corpus     []string `json:"corpus" validate:"required,min=1,dive,required"`
	Dictionary []string `json:"dictionary" validate:"required,min=1,dive,required"`
	Top        int      `json:"top" validate:"omitempty,min=1,max=100"`
}

// PlayResponse is the body answering POST /v1/play.
type PlayResponse struct {
	RequestID string          `json:"request_id"`
	Ranks     []scrabble.Rank `json:"ranks"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) play(c *gin.Context) {
	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, CodeInvalidInput, "malformed request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.fail(c, http.StatusBadRequest, CodeInvalidInput, validationMessage(err))
		return
	}

	top := lo.Ternary(req.Top > 0, req.Top, s.config.Top)
	player, err := scrabble.NewPlayer(s.config.Tables).Top(top).Build()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}

	ctx, end := s.config.Instruments.StartPlay(c.Request.Context(), len(req.Corpus))
	ranks, err := player.Play(
		ctx,
		lo.Map(req.Corpus, normalize),
		sinks.NewOrderedSet(lo.Map(req.Dictionary, normalize)...),
	)
	end(len(ranks), err)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}

	c.JSON(http.StatusOK, PlayResponse{
		RequestID: c.GetString(keyRequestID),
		Ranks:     lo.Ternary(ranks == nil, []scrabble.Rank{}, ranks),
	})
}

func (s *Server) fail(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(keyRequestID),
	})
}

func normalize(word string, _ int) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "validation failed"
	}

	messages := lo.Map(validationErrors, func(e validator.FieldError, _ int) string {
		switch e.Tag() {
		case "required":
			return e.Field() + ": is required"
		case "min":
			return e.Field() + ": must be at least " + e.Param()
		case "max":
			return e.Field() + ": must be at most " + e.Param()
		default:
			return e.Field() + ": is invalid"
		}
	})
	return strings.Join(messages, "; ")
}
