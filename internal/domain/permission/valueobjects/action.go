package valueobjects

// Action names an operation on a Resource.
type Action string

const (
	ActionCreate       Action = "create"
	ActionRead         Action = "read"
	ActionReadOwn      Action = "read_own"
	ActionReadQueue    Action = "read_queue"
	ActionSelfAssign   Action = "self_assign"
	ActionAssign       Action = "assign"
	ActionUpdateStatus Action = "update_status"
	ActionClose        Action = "close"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionManage       Action = "manage"
	ActionListStaff    Action = "list_staff"
	ActionStats        Action = "stats"
)

func (a Action) String() string {
	return string(a)
}
