package rbac

// RoleAdmin guards the role, permission and job administration routes.
const RoleAdmin = "admin"

// Warehouse permissions.
const (
	PermCategoryRead   = "category:read"
	PermCategoryCreate = "category:create"
	PermCategoryUpdate = "category:update"
	PermCategoryDelete = "category:delete"

	PermProductRead   = "product:read"
	PermProductCreate = "product:create"
	PermProductUpdate = "product:update"
	PermProductDelete = "product:delete"

	PermWarehouseRead   = "warehouse:read"
	PermWarehouseCreate = "warehouse:create"
	PermWarehouseUpdate = "warehouse:update"
	PermWarehouseDelete = "warehouse:delete"

	PermUserRead   = "user:read"
	PermUserCreate = "user:create"
	PermUserUpdate = "user:update"
)

// CRUDScopes is the read/create/update/delete permission set of one entity.
type CRUDScopes struct {
	Read, Create, Update, Delete string
}

var (
	CategoryScopes  = CRUDScopes{PermCategoryRead, PermCategoryCreate, PermCategoryUpdate, PermCategoryDelete}
	ProductScopes   = CRUDScopes{PermProductRead, PermProductCreate, PermProductUpdate, PermProductDelete}
	WarehouseScopes = CRUDScopes{PermWarehouseRead, PermWarehouseCreate, PermWarehouseUpdate, PermWarehouseDelete}
)

// AllScopes lists every permission the API checks.
func AllScopes() []string {
	return []string{
		PermCategoryRead, PermCategoryCreate, PermCategoryUpdate, PermCategoryDelete,
		PermProductRead, PermProductCreate, PermProductUpdate, PermProductDelete,
		PermWarehouseRead, PermWarehouseCreate, PermWarehouseUpdate, PermWarehouseDelete,
		PermUserRead, PermUserCreate, PermUserUpdate,
	}
}
