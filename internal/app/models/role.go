package models

type UserRole string

const (
	RolePatient    UserRole = "patient"
	RolePhysician  UserRole = "physician"
	RoleNurse      UserRole = "nurse"
	RoleSpecialist UserRole = "specialist"
	RoleAdmin      UserRole = "admin"
)

// ProviderRoles lists the roles allowed to see consultations across all
// patients.
var ProviderRoles = []UserRole{RolePhysician, RoleNurse, RoleSpecialist, RoleAdmin}

func (r UserRole) IsProvider() bool {
	for _, role := range ProviderRoles {
		if r == role {
			return true
		}
	}
	return false
}
