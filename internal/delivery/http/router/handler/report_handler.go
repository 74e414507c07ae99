package handler

import (
	"bytes"
	"net/http"

	"floradesk/internal/delivery/http/response"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/report"
	"floradesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for reporting handlers.
type ReportHandler struct {
	uc usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

type reportView struct {
	Kind    string     `json:"kind"`
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Dashboard returns the headline figures for the reports page.
func (h *ReportHandler) Dashboard(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

func (h *ReportHandler) generate(c echo.Context) (*report.Report, error) {
	kind, err := report.ParseKind(c.QueryParam("type"))
	if err != nil {
		return nil, domainerrors.ErrUnknownReportType.WithDetails(err.Error())
	}

	from, err := dateQuery(c, "from")
	if err != nil {
		return nil, err
	}
	to, err := dateQuery(c, "to")
	if err != nil {
		return nil, err
	}

	return h.uc.Generate(c.Request().Context(), kind, from, to)
}

// Generate builds a report and returns it as JSON.
func (h *ReportHandler) Generate(c echo.Context) error {
	r, err := h.generate(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reportView{
		Kind:    string(r.Kind),
		Title:   r.Title,
		Headers: r.Headers,
		Rows:    r.Rows,
	}, "")
}

// Export builds a report and streams it as a CSV or HTML attachment.
func (h *ReportHandler) Export(c echo.Context) error {
	r, err := h.generate(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var buf bytes.Buffer
	format := c.QueryParam("format")
	switch format {
	case "", "csv":
		if err := report.WriteCSV(&buf, r); err != nil {
			return errors.WithStack(err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+r.FileName("csv")+`"`)

		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	case "html":
		if err := report.WriteHTML(&buf, r); err != nil {
			return errors.WithStack(err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+r.FileName("html")+`"`)

		return c.HTMLBlob(http.StatusOK, buf.Bytes())
	default:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("format must be csv or html"))
	}
}
