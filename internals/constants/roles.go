package constants

// Role yang dikenal sistem. Server adalah sumber kebenaran otorisasi;
// klaim role di JWT hanya cache dari kolom users.role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var AllowedRoles = []string{RoleAdmin, RoleUser}

func IsValidRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
