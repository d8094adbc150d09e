package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	auditdomain "github.com/capquotelabs/capquote/internal/audit/domain"
	"github.com/gin-gonic/gin"
)

const maxExportWindow = 90 * 24 * time.Hour

// ExportAuditEvents handles GET /api/v1/audit/export.
func (s *Server) ExportAuditEvents(c *gin.Context) {
	startDateStr := strings.TrimSpace(c.Query("start_date"))
	endDateStr := strings.TrimSpace(c.Query("end_date"))
	formatStr := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "csv")))
	contextsStr := strings.TrimSpace(c.Query("contexts"))

	if startDateStr == "" || endDateStr == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	// End date is inclusive on the wire, exclusive in the query.
	endDate = endDate.Add(24 * time.Hour)

	if endDate.Before(startDate) || endDate.Sub(startDate) > maxExportWindow {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	var format auditdomain.ExportFormat
	switch formatStr {
	case "csv":
		format = auditdomain.ExportFormatCSV
	case "json":
		format = auditdomain.ExportFormatJSON
	default:
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	var contexts []string
	if contextsStr != "" {
		contexts = strings.Split(contextsStr, ",")
		for i := range contexts {
			contexts[i] = strings.TrimSpace(contexts[i])
		}
	}

	result, err := s.auditExportSvc.Export(c.Request.Context(), auditdomain.ExportRequest{
		StartDate: startDate,
		EndDate:   endDate,
		Format:    format,
		Contexts:  contexts,
	})
	if err != nil {
		AbortWithError(c, ErrInternal)
		return
	}

	c.Header("X-Audit-Export-Checksum", result.Checksum)
	c.Header("X-Audit-Export-Count", strconv.Itoa(result.Count))

	var contentType, filename string
	switch result.Format {
	case auditdomain.ExportFormatCSV:
		contentType = "text/csv"
		filename = "audit_export_" + startDateStr + "_" + endDateStr + ".csv"
	case auditdomain.ExportFormatJSON:
		contentType = "application/json"
		filename = "audit_export_" + startDateStr + "_" + endDateStr + ".json"
	}

	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(http.StatusOK, contentType, result.Data)
}
