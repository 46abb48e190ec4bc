package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"contact-form-backend/internal/delivery/http/response"
	"contact-form-backend/internal/domain"
	"contact-form-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const maxContactBodyBytes = 1 << 20

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// ContactData is echoed back after a successful submission
type ContactData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	FilesCount int    `json:"filesCount"`
	Timestamp  string `json:"timestamp"`
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Emails the contact form to the site owner. When the email cannot be sent the form is saved on the server and a submission id is returned.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=ContactData}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBodyBytes)

	// The raw body is kept so a fallback record holds exactly what was sent
	raw, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.BadRequest(domain.MsgInvalidBody))
		return
	}

	var req domain.ContactRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.Error(apperror.BadRequest(domain.MsgInvalidBody))
		return
	}
	req.Raw = raw

	result, err := h.contactUC.Submit(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrMissingRequiredFields) {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	if !result.Success {
		response.SavedLocally(c, http.StatusInternalServerError, domain.MsgSavedLocally, result.SubmissionID)
		return
	}

	response.Success(c, http.StatusOK, domain.MsgSubmitted, ContactData{
		Name:       result.Name,
		Email:      result.Email,
		FilesCount: result.FilesCount,
		Timestamp:  result.Timestamp,
	})
}
