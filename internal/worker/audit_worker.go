package worker

import (
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/service"
)

// StartAuditWorker registers audit handlers on the dispatcher.
func StartAuditWorker(audit *service.AuditService) {
	if audit == nil {
		return
	}
	audit.RegisterHandlers()
}
