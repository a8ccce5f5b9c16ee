// api/service/services.go
package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/dev-mohitbeniwal/community/api/audit"
	"github.com/dev-mohitbeniwal/community/api/dao"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
	"github.com/dev-mohitbeniwal/community/api/util"
)

type Services struct {
	Auth         IAuthService
	User         IUserService
	Community    ICommunityService
	Binding      IBindingService
	WorkOrder    IWorkOrderService
	Complaint    IComplaintService
	VisitorPass  IVisitorPassService
	Announcement IAnnouncementService
	Notification INotificationService
	Merchant     IMerchantService
	Payment      IPaymentService
}

func InitializeServices(
	db *gorm.DB,
	auditService audit.Service,
	authConfig AuthConfig,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	lockService *util.LockService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(db)
	communityDAO := dao.NewCommunityDAO(db)
	bindingDAO := dao.NewBindingDAO(db)
	workOrderDAO := dao.NewWorkOrderDAO(db)
	complaintDAO := dao.NewComplaintDAO(db)
	visitorPassDAO := dao.NewVisitorPassDAO(db)
	announcementDAO := dao.NewAnnouncementDAO(db)
	notificationDAO := dao.NewNotificationDAO(db)
	merchantDAO := dao.NewMerchantDAO(db)
	paymentDAO := dao.NewPaymentDAO(db)

	common := Common{
		Audit:     auditService,
		Events:    eventBus,
		Evaluator: engine.NewEvaluator(),
		Now:       time.Now,
	}

	services := &Services{
		Auth:         NewAuthService(userDAO, authConfig),
		User:         NewUserService(userDAO, common),
		Community:    NewCommunityService(communityDAO, bindingDAO, cacheService, validationUtil, common),
		Binding:      NewBindingService(bindingDAO, communityDAO, common),
		WorkOrder:    NewWorkOrderService(workOrderDAO, bindingDAO, common),
		Complaint:    NewComplaintService(complaintDAO, bindingDAO, common),
		VisitorPass:  NewVisitorPassService(visitorPassDAO, bindingDAO, common),
		Announcement: NewAnnouncementService(announcementDAO, bindingDAO, communityDAO, validationUtil, common),
		Notification: NewNotificationService(notificationDAO, notificationSvc, audienceResolver{bindingDAO, communityDAO}, eventBus, common),
		Merchant:     NewMerchantService(merchantDAO, validationUtil, common),
		Payment:      NewPaymentService(paymentDAO, bindingDAO, merchantDAO, lockService, common),
	}

	return services, nil
}

type audienceResolver struct {
	*dao.BindingDAO
	*dao.CommunityDAO
}
