package domain

// Role роль того, кто выполняет запрос
type Role string

const (
	RoleVisitor Role = "visitor"
	RoleAdmin   Role = "admin"
)

// Viewer контекст доступа, явно передаваемый в запросы к каталогу
type Viewer struct {
	Role    Role
	AdminID int64
}

// Visitor анонимный посетитель сайта
var Visitor = Viewer{Role: RoleVisitor}

// Admin returns a viewer for an authenticated administrator
func Admin(adminID int64) Viewer {
	return Viewer{Role: RoleAdmin, AdminID: adminID}
}

func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}
