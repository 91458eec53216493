package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Attendance
	PermissionAttendanceMark    Permission = "attendance.mark"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Sales
	PermissionSalesCreate  Permission = "sales.create"
	PermissionSalesViewOwn Permission = "sales.view_own"
	PermissionSalesViewAll Permission = "sales.view_all"

	// Stock and tanks
	PermissionStockView   Permission = "stock.view"
	PermissionStockManage Permission = "stock.manage"

	// Expenses
	PermissionExpenseManage Permission = "expense.manage"

	// Staff management
	PermissionStaffViewAll Permission = "staff.view_all"
	PermissionStaffManage  Permission = "staff.manage"

	// Admin management (product level)
	PermissionAdminManage Permission = "admin.manage"

	// Reports
	PermissionReportsExport Permission = "reports.export"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAdminManage,
		PermissionStaffViewAll,
		PermissionSalesViewAll,
		PermissionReportsExport,
	},
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewAll,
		PermissionSalesViewAll,
		PermissionStockView,
		PermissionStockManage,
		PermissionExpenseManage,
		PermissionStaffViewAll,
		PermissionStaffManage,
		PermissionReportsExport,
	},
	RoleStaff: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceMark,
		PermissionAttendanceViewOwn,
		PermissionSalesCreate,
		PermissionSalesViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
