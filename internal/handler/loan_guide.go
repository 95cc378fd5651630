package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/segyhp/loan-guide/internal/report"
	"github.com/segyhp/loan-guide/internal/service"
	customError "github.com/segyhp/loan-guide/pkg/errors"
	"github.com/segyhp/loan-guide/pkg/response"
)

type LoanGuideHandler struct {
	service   service.LoanGuideProvider
	validator *validator.Validate
	log       logrus.FieldLogger
}

func NewLoanGuideHandler(service service.LoanGuideProvider, log logrus.FieldLogger) *LoanGuideHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoanGuideHandler{
		service:   service,
		validator: validator.New(),
		log:       log,
	}
}

// GetLoanGuide returns the timeline grid of a loan
func (h *LoanGuideHandler) GetLoanGuide(w http.ResponseWriter, r *http.Request) {
	loanID, ok := h.loanID(w, r)
	if !ok {
		return
	}

	view, err := h.service.GetLoanGuideView(r.Context(), loanID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, view)
}

// RefreshLoanGuide reloads the loan guide from the database
func (h *LoanGuideHandler) RefreshLoanGuide(w http.ResponseWriter, r *http.Request) {
	loanID, ok := h.loanID(w, r)
	if !ok {
		return
	}

	view, err := h.service.RefreshLoanGuide(r.Context(), loanID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, view)
}

// ExportLoanGuide downloads the timeline grid as a spreadsheet
func (h *LoanGuideHandler) ExportLoanGuide(w http.ResponseWriter, r *http.Request) {
	loanID, ok := h.loanID(w, r)
	if !ok {
		return
	}

	view, err := h.service.GetLoanGuideView(r.Context(), loanID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	body, filename, err := report.TimelineXLSX(view)
	if err != nil {
		h.writeError(w, customError.WrapExportError(err))
		return
	}

	response.File(w, report.ContentType, filename, body)
}

func (h *LoanGuideHandler) loanID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["loanId"]
	if err := h.validator.Var(raw, "required,uuid"); err != nil {
		be := customError.WrapInvalidLoanID(raw)
		response.ErrorWithCode(w, http.StatusBadRequest, be.Code, be.Message, err)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		be := customError.WrapInvalidLoanID(raw)
		response.ErrorWithCode(w, http.StatusBadRequest, be.Code, be.Message, err)
		return uuid.Nil, false
	}

	return id, true
}

func (h *LoanGuideHandler) writeError(w http.ResponseWriter, err error) {
	var be *customError.BusinessError
	if !errors.As(err, &be) {
		h.log.WithError(err).Error("unexpected loan guide error")
		response.InternalServerError(w, "Internal server error", nil)
		return
	}

	status := http.StatusInternalServerError
	switch be.Code {
	case customError.ErrCodeLoanGuideNotFound:
		status = http.StatusNotFound
	case customError.ErrCodeInvalidLoanID:
		status = http.StatusBadRequest
	case customError.ErrCodeDatabaseError, customError.ErrCodeCacheError:
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		h.log.WithError(err).WithField("code", be.Code).Error("loan guide request failed")
	}

	response.ErrorWithCode(w, status, be.Code, be.Message, nil)
}
