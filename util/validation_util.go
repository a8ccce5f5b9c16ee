// api/util/validation_util.go

package util

import (
	"fmt"
	"strings"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func invalid(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

func (v *ValidationUtil) ValidateCommunity(community model.Community) error {
	if strings.TrimSpace(community.Name) == "" {
		return invalid(echo_errors.ErrInvalidCommunityData, "community name cannot be empty")
	}
	if strings.TrimSpace(community.Address) == "" {
		return invalid(echo_errors.ErrInvalidCommunityData, "community address cannot be empty")
	}
	if community.FeeStandardCents < 0 {
		return invalid(echo_errors.ErrInvalidCommunityData, "fee standard cannot be negative")
	}
	return nil
}

func (v *ValidationUtil) ValidateBuilding(building model.Building) error {
	if building.CommunityID == 0 {
		return invalid(echo_errors.ErrInvalidBuildingData, "community_id is required")
	}
	if strings.TrimSpace(building.Name) == "" {
		return invalid(echo_errors.ErrInvalidBuildingData, "building name cannot be empty")
	}
	if building.UnitCount < 0 {
		return invalid(echo_errors.ErrInvalidBuildingData, "unit count cannot be negative")
	}
	return nil
}

func (v *ValidationUtil) ValidateHouse(house model.House) error {
	if house.BuildingID == 0 {
		return invalid(echo_errors.ErrInvalidHouseData, "building_id is required")
	}
	if strings.TrimSpace(house.Unit) == "" || strings.TrimSpace(house.Number) == "" {
		return invalid(echo_errors.ErrInvalidHouseData, "unit and number are required")
	}
	if house.Area <= 0 {
		return invalid(echo_errors.ErrInvalidHouseData, "area must be positive")
	}
	return nil
}

func (v *ValidationUtil) ValidateAnnouncement(req model.AnnouncementRequest) error {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return invalid(echo_errors.ErrInvalidAnnouncementData, "title and content are required")
	}
	switch req.Type {
	case model.AnnouncementEmergency, model.AnnouncementActivity, model.AnnouncementNormal:
	default:
		return invalid(echo_errors.ErrInvalidAnnouncementData, "unknown announcement type %q", req.Type)
	}
	switch req.TargetType {
	case model.TargetAll:
		if len(req.TargetIDs) > 0 {
			return invalid(echo_errors.ErrInvalidAnnouncementData, "target_ids must be empty when targeting all residents")
		}
	case model.TargetBuilding, model.TargetHouse:
		if len(req.TargetIDs) == 0 {
			return invalid(echo_errors.ErrInvalidAnnouncementData, "target_ids are required for %s targets", req.TargetType)
		}
	default:
		return invalid(echo_errors.ErrInvalidAnnouncementData, "unknown target type %q", req.TargetType)
	}
	return nil
}

func (v *ValidationUtil) ValidateMerchantApplication(req model.MerchantApplicationRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid(echo_errors.ErrInvalidMerchantData, "merchant name cannot be empty")
	}
	if strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.Phone) == "" {
		return invalid(echo_errors.ErrInvalidMerchantData, "address and phone are required")
	}
	switch req.Category {
	case "", model.CategoryRepairService, model.CategoryLifeService, model.CategoryRetailStore, model.CategoryFoodBeverage:
	default:
		return invalid(echo_errors.ErrInvalidMerchantData, "unknown category %q", req.Category)
	}
	return nil
}

func (v *ValidationUtil) ValidateMerchantService(req model.MerchantServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid(echo_errors.ErrInvalidMerchantData, "service name cannot be empty")
	}
	if req.PriceCents <= 0 {
		return invalid(echo_errors.ErrInvalidMerchantData, "price must be positive")
	}
	return nil
}

func (v *ValidationUtil) ValidateMerchantOrder(req model.CreateMerchantOrderRequest) error {
	if req.ServiceID == 0 {
		return invalid(echo_errors.ErrInvalidMerchantOrderData, "service_id is required")
	}
	if req.Quantity < 0 {
		return invalid(echo_errors.ErrInvalidMerchantOrderData, "quantity must be at least 1")
	}
	if strings.TrimSpace(req.ServiceAddress) == "" || strings.TrimSpace(req.ContactName) == "" || strings.TrimSpace(req.ContactPhone) == "" {
		return invalid(echo_errors.ErrInvalidMerchantOrderData, "service address and contact are required")
	}
	return nil
}
