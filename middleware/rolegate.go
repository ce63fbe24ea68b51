package middleware

import (
	"eduportal/models"

	"github.com/gofiber/fiber/v2"
)

// routeRoles is the fixed route-to-role table. A nil entry is a public route.
// Every page registers against exactly one of these routes; keeping the table
// in one place stops role checks from drifting between pages.
var routeRoles = map[string][]string{
	"/":         nil,
	"/about":    nil,
	"/contact":  nil,
	"/register": nil,
	"/auth":     nil,

	"/course/details/:id": {models.RoleStudent, models.RoleAdmin},

	"/student/dashboard": {models.RoleStudent},

	"/admin/dashboard": {models.RoleAdmin},
	"/admin/profile":   {models.RoleAdmin},

	"/profile": {models.RoleStudent, models.RoleAdmin},
}

// RolesForRoute returns the required roles for a registered route.
func RolesForRoute(route string) ([]string, bool) {
	roles, ok := routeRoles[route]
	return roles, ok
}

// CanAccess reports whether the session may see a route requiring one of the
// given roles. An empty requirement means the route is public.
func CanAccess(sess models.Session, required []string) bool {
	if len(required) == 0 {
		return true
	}
	if !sess.LoggedIn() {
		return false
	}
	for _, role := range required {
		if sess.User.Role == role {
			return true
		}
	}
	return false
}

// RequireRoles gates a route. Anonymous users land on the login page, a
// role mismatch lands on home; gated pages never render partially.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if CanAccess(sess, roles) {
			return c.Next()
		}
		if !sess.LoggedIn() {
			return c.Redirect("/auth", fiber.StatusSeeOther)
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}
