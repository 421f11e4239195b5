package permission

import "github.com/corycamp/support-ticket-backend/internal/shared/authorization"

const (
	read      = "^GET$"
	readWrite = "^(GET|POST)$"
	edit      = "^PUT$"
)

// DefaultPolicies grants admins every route. Users may read and create
// tickets and comments and edit ticket text and comment content.
func DefaultPolicies() [][]string {
	admin := authorization.RoleAdmin.String()
	user := authorization.RoleUser.String()

	return [][]string{
		{admin, "/*", ".*"},

		{user, "/tickets", readWrite},
		{user, "/tickets/:id", read},
		{user, "/tickets/:id/comments", read},
		{user, "/tickets/:id/title", edit},
		{user, "/tickets/:id/description", edit},
		{user, "/comments", readWrite},
		{user, "/comments/:id", read},
		{user, "/comments/:id/content", edit},
	}
}
