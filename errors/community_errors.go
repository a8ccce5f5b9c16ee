// api/errors/community_errors.go
package errors

import "errors"

var (
	ErrCommunityNotFound    = errors.New("community not found")
	ErrCommunityConflict    = errors.New("community conflict")
	ErrInvalidCommunityData = errors.New("invalid community data")

	ErrBuildingNotFound    = errors.New("building not found")
	ErrBuildingConflict    = errors.New("building conflict")
	ErrInvalidBuildingData = errors.New("invalid building data")

	ErrHouseNotFound    = errors.New("house not found")
	ErrHouseConflict    = errors.New("house conflict")
	ErrInvalidHouseData = errors.New("invalid house data")

	ErrBindingNotFound    = errors.New("binding not found")
	ErrInvalidBindingData = errors.New("invalid binding data")
)
