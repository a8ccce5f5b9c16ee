package workflow_test

import (
	"time"

	"github.com/dev-mohitbeniwal/community/api/model"
)

var (
	resident = &model.Actor{ID: 10, Username: "resident", Role: model.RoleResident}
	neighbor = &model.Actor{ID: 11, Username: "neighbor", Role: model.RoleResident}
	staff    = &model.Actor{ID: 20, Username: "staff", Role: model.RolePropertyStaff}
	other    = &model.Actor{ID: 21, Username: "staff2", Role: model.RolePropertyStaff}
	root     = &model.Actor{ID: 1, Username: "root", IsSuperuser: true, Role: model.RoleNone}
	nobody   = &model.Actor{ID: 30, Username: "nobody", Role: model.RoleNone}
	vendor   = &model.Actor{ID: 40, Username: "vendor", Role: model.RoleMerchant}
)

var now = time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC)

func at(hour int) time.Time {
	return time.Date(2024, 5, 6, hour, 0, 0, 0, time.UTC)
}
