package valueobjects

// Resource names the thing a policy guards.
type Resource string

const (
	ResourceTicket    Resource = "ticket"
	ResourceAsset     Resource = "asset"
	ResourceArticle   Resource = "article"
	ResourceUser      Resource = "user"
	ResourceDashboard Resource = "dashboard"
)

func (r Resource) String() string {
	return string(r)
}
