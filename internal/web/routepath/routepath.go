// Package routepath centralizes the site's route constants.
package routepath

import "net/url"

const (
	Home         = "/"
	Login        = "/login"
	Logout       = "/logout"
	Unauthorized = "/unauthorized"
)

const (
	Admin       = "/admin"
	AdminDelete = "/admin/delete"
	AdminPrefix = "/admin/"
)

const (
	StaticPrefix = "/static/"
	AssetsPrefix = "/assets/"
)

// AdminEdit returns the admin page URL with the edit form prefilled for a
// command id.
func AdminEdit(commandID string) string {
	return Admin + "?edit=" + url.QueryEscape(commandID)
}

// AdminDeleteConfirm returns the delete confirmation URL for a command id.
func AdminDeleteConfirm(commandID string) string {
	return AdminDelete + "?id=" + url.QueryEscape(commandID)
}

// Asset returns the public URL for a stored asset key.
func Asset(key string) string {
	return "/" + key
}
