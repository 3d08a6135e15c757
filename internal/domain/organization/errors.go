package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrRegistryNumberExists = errors.New("registry number already registered")
)
