package payrollhandler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"driverpay/internal/domain/payroll"
	"driverpay/internal/domain/timesheet"
	"driverpay/internal/ingest"
	"driverpay/internal/report"
	"driverpay/internal/transport/http/api"
	"driverpay/internal/transport/http/middleware"
	"driverpay/internal/transport/http/shared"
)

const maxMemory = 8 << 20

var formats = []string{payroll.FormatJSON, payroll.FormatPDF, payroll.FormatCSV}

type Handler struct {
	Service *payroll.Service
	Now     func() time.Time
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/drivers", h.handleListDrivers)
		r.Post("/sheets", h.handleListSheets)
		r.Post("/breakdown", h.handleBreakdown)
	})
}

func (h *Handler) handleListDrivers(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{
		"drivers":  h.Service.Drivers(),
		"currency": h.Service.Currency(),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListSheets(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	file, header, ok := h.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	sheets, err := h.Service.Sheets(file, header.Filename)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, map[string]any{"filename": filepath.Base(header.Filename), "sheets": sheets}, requestID)
}

func (h *Handler) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	file, header, ok := h.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	v := shared.NewValidator()
	driver := strings.TrimSpace(r.FormValue("driver"))
	salary, _ := v.NonNegative("salary", r.FormValue("salary"))
	format := strings.ToLower(strings.TrimSpace(r.FormValue("format")))
	if format == "" {
		format = payroll.FormatJSON
	}
	v.Enum("format", format, formats, "must be one of json, pdf, csv")
	strict := v.Bool("strictOvertime", r.FormValue("strictOvertime"))
	if v.Reject(w, requestID) {
		return
	}

	res, err := h.Service.Compute(r.Context(), payroll.Request{
		File:     file,
		Filename: header.Filename,
		Driver:   driver,
		Salary:   salary,
		Options:  payroll.Options{StrictOvertime: strict},
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	switch format {
	case payroll.FormatPDF:
		var buf bytes.Buffer
		if err := report.PDF(&buf, res, h.Now()); err != nil {
			slog.Error("render pdf failed", "err", err, "requestId", requestID)
			api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to render statement", requestID)
			return
		}
		attachment(w, "application/pdf", filename(res, "pdf"), buf.Bytes())
	case payroll.FormatCSV:
		var buf bytes.Buffer
		if err := report.CSV(&buf, res); err != nil {
			slog.Error("render csv failed", "err", err, "requestId", requestID)
			api.Fail(w, http.StatusInternalServerError, "internal_error", "unable to render statement", requestID)
			return
		}
		attachment(w, "text/csv", filename(res, "csv"), buf.Bytes())
	default:
		api.Success(w, res, requestID)
	}
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, bool) {
	requestID := middleware.GetRequestID(r.Context())
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "upload exceeds the size limit", requestID)
			return nil, nil, false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "expected a multipart form upload", requestID)
		return nil, nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: "file", Reason: "is required"}})
		return nil, nil, false
	}
	if !ingest.Supported(header.Filename) {
		_ = file.Close()
		api.Fail(w, http.StatusUnsupportedMediaType, "unsupported_format", "upload an .xlsx, .xls, .csv or .tsv timesheet", requestID)
		return nil, nil, false
	}
	return file, header, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	code := payroll.Code(err)

	var schemaErr *timesheet.SchemaError
	switch code {
	case "schema_error":
		errors.As(err, &schemaErr)
		api.FailWithDetails(w, http.StatusUnprocessableEntity, code, "timesheet is missing required columns",
			map[string]any{"missing": schemaErr.Missing}, requestID)
	case "empty_data":
		api.Fail(w, http.StatusUnprocessableEntity, code, "no timesheet rows left after removing summary rows", requestID)
	case "division_by_zero":
		message, details := "cannot apportion salary", map[string]any{}
		var divErr *payroll.DivisionByZeroError
		if errors.As(err, &divErr) {
			message = divErr.Error()
			details["kind"] = divErr.Kind
		}
		api.FailWithDetails(w, http.StatusUnprocessableEntity, code, message, details, requestID)
	case "non_finite_result":
		api.Fail(w, http.StatusUnprocessableEntity, code, "overtime figures are too small or too large to apportion", requestID)
	case "invalid_salary":
		shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: "salary", Reason: "must be a non-negative number"}})
	case "sheet_not_found":
		api.Fail(w, http.StatusNotFound, code, err.Error(), requestID)
	case "unsupported_format":
		api.Fail(w, http.StatusUnsupportedMediaType, code, err.Error(), requestID)
	case "invalid_file":
		api.Fail(w, http.StatusBadRequest, code, err.Error(), requestID)
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "upload exceeds the size limit", requestID)
			return
		}
		slog.Error("payroll request failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", requestID)
	}
}

func attachment(w http.ResponseWriter, contentType, name string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func filename(res payroll.Result, ext string) string {
	name := strings.ToLower(strings.Join(strings.Fields(res.Driver), "-"))
	if name == "" {
		name = "timesheet"
	}
	return "salary-" + name + "." + ext
}
