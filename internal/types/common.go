package types

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
	AgentCtxName = "agent"
)

// AgentContext carries the authenticated agent identity through a request.
// It is stored in fiber locals by the authjwt middleware and consumed by
// handlers that need the acting agent.
type AgentContext struct {
	AgentID int64
	Admin   bool
	Name    string
}
