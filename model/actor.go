package model

// ActorRole is the role an authenticated actor holds for the lifetime of a
// single request.
type ActorRole string

const (
	RoleNone          ActorRole = "NONE"
	RoleResident      ActorRole = "RESIDENT"
	RolePropertyStaff ActorRole = "PROPERTY_STAFF"
	RoleMerchant      ActorRole = "MERCHANT"
)

// Actor is the resolved identity behind an inbound request. It is never
// persisted or cached across requests.
type Actor struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	IsSuperuser bool      `json:"is_superuser"`
	Role        ActorRole `json:"role"`
}

// Owned is implemented by records that carry a requester, creator or owner
// foreign key.
type Owned interface {
	OwnerID() uint
}
