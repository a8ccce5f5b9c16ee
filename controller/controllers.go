// api/controller/controllers.go
package controller

import (
	"github.com/dev-mohitbeniwal/community/api/audit"
	"github.com/dev-mohitbeniwal/community/api/service"
)

type Controllers struct {
	Auth         *AuthController
	User         *UserController
	Community    *CommunityController
	Binding      *BindingController
	WorkOrder    *WorkOrderController
	Complaint    *ComplaintController
	VisitorPass  *VisitorPassController
	Announcement *AnnouncementController
	Notification *NotificationController
	Merchant     *MerchantController
	Payment      *PaymentController
	Audit        *AuditController
	Health       *HealthController
}

func InitializeControllers(services *service.Services, auditService audit.Service, checks map[string]HealthCheck) *Controllers {
	return &Controllers{
		Auth:         NewAuthController(services.Auth),
		User:         NewUserController(services.User),
		Community:    NewCommunityController(services.Community),
		Binding:      NewBindingController(services.Binding),
		WorkOrder:    NewWorkOrderController(services.WorkOrder),
		Complaint:    NewComplaintController(services.Complaint),
		VisitorPass:  NewVisitorPassController(services.VisitorPass),
		Announcement: NewAnnouncementController(services.Announcement),
		Notification: NewNotificationController(services.Notification),
		Merchant:     NewMerchantController(services.Merchant),
		Payment:      NewPaymentController(services.Payment),
		Audit:        NewAuditController(auditService),
		Health:       NewHealthController(checks),
	}
}
