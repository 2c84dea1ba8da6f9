package handler

type ContextKey string

var (
	RoleCtxKey     ContextKey = "role"
	SubCtxKey      ContextKey = "sub"
	MyInfoCtx      ContextKey = "myInfo"
	UserInfoCtx    ContextKey = "userInfo"
	EmployeeCtx    ContextKey = "employee"
	VehicleCtx     ContextKey = "vehicle"
	ShiftPeriodCtx ContextKey = "shiftPeriod"
)
