package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records webhook deliveries (whatever their status) and
// successful admin operations.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}
		if action != domain.AuditActionWebhookReceived && (status < 200 || status >= 300) {
			return
		}

		details := map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		}
		resourceID := c.GetString(CtxEventID)
		if t := c.GetString(CtxEventType); t != "" {
			details["event_type"] = t
		}
		if sub := c.GetString(CtxAdminSubject); sub != "" {
			details["admin"] = sub
		}
		if resourceID == "" {
			resourceID = lastParam(c)
		}
		raw, _ := json.Marshal(details)

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Outcome:      c.GetString(CtxEventOutcome),
			IPAddress:    c.ClientIP(),
			Details:      string(raw),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapPathToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/webhooks/stripe" && method == http.MethodPost:
		return domain.AuditActionWebhookReceived, "event"
	case route == "/api/v1/admin/login" && method == http.MethodPost:
		return domain.AuditActionAdminLogin, "session"
	case strings.HasPrefix(route, "/api/v1/admin/events/") && method == http.MethodGet:
		return domain.AuditActionAdminRead, "event"
	case strings.HasPrefix(route, "/api/v1/admin/payouts") && method == http.MethodGet:
		return domain.AuditActionAdminRead, "payout"
	case strings.HasPrefix(route, "/api/v1/admin/transfers/") && method == http.MethodGet:
		return domain.AuditActionAdminRead, "transfer"
	case strings.HasPrefix(route, "/api/v1/admin/transactions/") && method == http.MethodGet:
		return domain.AuditActionAdminRead, "transaction"
	}
	return "", ""
}

func lastParam(c *gin.Context) string {
	if n := len(c.Params); n > 0 {
		return c.Params[n-1].Value
	}
	return ""
}
