package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
)

func TestValidateAnnouncement(t *testing.T) {
	v := NewValidationUtil()
	base := model.AnnouncementRequest{Title: "Water outage", Content: "Tuesday 9-12", Type: model.AnnouncementNormal, TargetType: model.TargetAll}

	assert.NoError(t, v.ValidateAnnouncement(base))

	withIDs := base
	withIDs.TargetIDs = []uint{1}
	assert.True(t, errors.Is(v.ValidateAnnouncement(withIDs), echo_errors.ErrInvalidAnnouncementData))

	building := base
	building.TargetType = model.TargetBuilding
	assert.True(t, errors.Is(v.ValidateAnnouncement(building), echo_errors.ErrInvalidAnnouncementData))
	building.TargetIDs = []uint{3, 4}
	assert.NoError(t, v.ValidateAnnouncement(building))

	unknown := base
	unknown.Type = "urgent"
	assert.True(t, errors.Is(v.ValidateAnnouncement(unknown), echo_errors.ErrInvalidAnnouncementData))
}

func TestValidateProperty(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidateCommunity(model.Community{Name: "Lakeside", Address: "1 Shore Rd"}))
	assert.True(t, errors.Is(v.ValidateCommunity(model.Community{Name: "Lakeside"}), echo_errors.ErrInvalidCommunityData))
	assert.True(t, errors.Is(v.ValidateCommunity(model.Community{Name: "L", Address: "A", FeeStandardCents: -1}), echo_errors.ErrInvalidCommunityData))

	assert.NoError(t, v.ValidateBuilding(model.Building{CommunityID: 1, Name: "B1", UnitCount: 2}))
	assert.True(t, errors.Is(v.ValidateBuilding(model.Building{Name: "B1"}), echo_errors.ErrInvalidBuildingData))

	assert.NoError(t, v.ValidateHouse(model.House{BuildingID: 1, Unit: "1", Number: "101", Area: 88.5}))
	assert.True(t, errors.Is(v.ValidateHouse(model.House{BuildingID: 1, Unit: "1", Number: "101"}), echo_errors.ErrInvalidHouseData))
}

func TestValidateMerchant(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidateMerchantApplication(model.MerchantApplicationRequest{Name: "Fix-It", Address: "Gate 2", Phone: "555"}))
	assert.True(t, errors.Is(v.ValidateMerchantApplication(model.MerchantApplicationRequest{Name: "Fix-It", Address: "Gate 2", Phone: "555", Category: "TOYS"}), echo_errors.ErrInvalidMerchantData))
	assert.True(t, errors.Is(v.ValidateMerchantService(model.MerchantServiceRequest{Name: "Pipe repair"}), echo_errors.ErrInvalidMerchantData))
	assert.True(t, errors.Is(v.ValidateMerchantOrder(model.CreateMerchantOrderRequest{ServiceID: 1}), echo_errors.ErrInvalidMerchantOrderData))
}
