package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain"
	"huduma-portal/internal/domain/models"
	"huduma-portal/internal/forms"
	"huduma-portal/internal/http/middleware"
	"huduma-portal/internal/services"

	"github.com/gin-gonic/gin"
)

func newApplicationService(c *gin.Context) services.ApplicationService {
	return services.ApplicationService{
		Gateway:   gateway,
		RequestID: middleware.GetRequestID(c),
	}
}

type applicationPayload struct {
	InstitutionID string            `json:"institutionId"`
	Values        map[string]string `json:"values"`
}

// POST /api/services/:id/applications
// Raw form values; the field definitions drive validation server-side.
func SubmitApplication(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || serviceID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	var payload applicationPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	values := forms.FormValues{}
	for k, v := range payload.Values {
		values[k] = v
	}
	if strings.TrimSpace(payload.InstitutionID) != "" {
		values[forms.InstitutionField] = strings.TrimSpace(payload.InstitutionID)
	}

	resp, err := newApplicationService(c).SubmitForm(c.Request.Context(), serviceID, values)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// POST /api/bill-requests
// The wire-contract payload; values are re-validated against the stored
// definitions before anything is written.
func SubmitBillRequest(c *gin.Context) {
	var bill models.BillRequest
	if !BindJSONOrError(c, &bill) {
		return
	}

	resp, err := newApplicationService(c).SubmitBill(c.Request.Context(), bill)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GET /api/bill-tracking/:requestCode
func TrackRequest(c *gin.Context) {
	code := strings.TrimSpace(c.Param("requestCode"))

	rec, err := newApplicationService(c).Track(c.Request.Context(), code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

type gatewayCallbackPayload struct {
	ControlNumber string `json:"controlNumber" binding:"required"`
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// POST /api/billing/callback
// The gateway pushes payment-status changes here.
func BillingCallback(c *gin.Context) {
	var payload gatewayCallbackPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	if err := newApplicationService(c).ApplyGatewayCallback(payload.ControlNumber, payload.PaymentStatus); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment status recorded"})
}

// GET /api/bill-requests/:requestCode/receipt
func GetBillReceipt(c *gin.Context) {
	svc := services.ReceiptService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateReceipt(c.Param("requestCode"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

type billRequestRow struct {
	ID            int64  `json:"id"`
	RequestCode   string `json:"requestCode"`
	ServiceName   string `json:"serviceName"`
	Institution   string `json:"institution"`
	ControlNumber string `json:"controlNumber,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	SubmittedAt   string `json:"submittedAt"`
}

// GET /api/admin/bill-requests?q=HP&page=1&limit=50
func ListBillRequests(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	pg := domain.NormalizePagination(page, limit, 200)

	query := `
		SELECT b.id,
		       b.request_code,
		       s.service_name,
		       COALESCE(i.name,''),
		       COALESCE(cn.control_number,''),
		       COALESCE(cn.payment_status,''),
		       COALESCE(DATE_FORMAT(b.submitted_at, '%Y-%m-%d %H:%i'), '')
		FROM bill_requests b
		JOIN services s ON s.id = b.service_id
		LEFT JOIN institutions i ON i.id = b.institute_id
		LEFT JOIN control_numbers cn ON cn.bill_request_id = b.id`

	args := []any{}
	if q != "" {
		query += ` WHERE (b.request_code LIKE ? OR s.service_name LIKE ? OR cn.control_number LIKE ?)`
		like := "%" + q + "%"
		args = append(args, like, like, like)
	}
	query += ` ORDER BY b.id DESC LIMIT ? OFFSET ?`
	args = append(args, pg.PageSize, pg.Offset())

	rows, err := intconfig.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bill requests: " + err.Error()})
		return
	}
	defer rows.Close()

	list := []billRequestRow{}
	for rows.Next() {
		var r billRequestRow
		if err := rows.Scan(&r.ID, &r.RequestCode, &r.ServiceName, &r.Institution,
			&r.ControlNumber, &r.PaymentStatus, &r.SubmittedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan bill request: " + err.Error()})
			return
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}
