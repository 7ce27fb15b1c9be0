package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Shared chrome
	message.SetString(lang, "site.name", "Abismo RPG")
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.admin", "Admin")
	message.SetString(lang, "nav.login", "Sign in")
	message.SetString(lang, "nav.logout", "Sign out")

	// Public page
	message.SetString(lang, "title.home", "%s | Commands")
	message.SetString(lang, "home.heading", "Commands")
	message.SetString(lang, "home.empty", "No commands registered yet.")

	// Login page
	message.SetString(lang, "title.login", "%s | Sign In")
	message.SetString(lang, "login.heading", "Sign in to the admin panel")
	message.SetString(lang, "login.email", "Email")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Sign in")

	// Admin panel
	message.SetString(lang, "title.admin", "%s | Admin")
	message.SetString(lang, "admin.heading", "Command panel")
	message.SetString(lang, "admin.form_heading_new", "New command")
	message.SetString(lang, "admin.form_heading_edit", "Edit command")
	message.SetString(lang, "admin.field_command", "Command")
	message.SetString(lang, "admin.field_title", "Title")
	message.SetString(lang, "admin.field_category", "Category")
	message.SetString(lang, "admin.field_new_category", "New category")
	message.SetString(lang, "admin.field_response", "Response")
	message.SetString(lang, "admin.field_image", "Image")
	message.SetString(lang, "admin.submit_create", "Create")
	message.SetString(lang, "admin.submit_update", "Save")
	message.SetString(lang, "admin.cancel_edit", "Cancel editing")
	message.SetString(lang, "admin.edit", "Edit")
	message.SetString(lang, "admin.delete", "Delete")
	message.SetString(lang, "admin.list_heading", "Registered commands")
	message.SetString(lang, "admin.empty", "No commands registered.")

	// Delete confirmation
	message.SetString(lang, "title.delete", "%s | Delete command")
	message.SetString(lang, "delete.heading", "Delete command")
	message.SetString(lang, "delete.question", "Are you sure you want to delete the command %s?")
	message.SetString(lang, "delete.confirm", "Delete")
	message.SetString(lang, "delete.cancel", "Cancel")

	// Unauthorized page
	message.SetString(lang, "title.unauthorized", "%s | Access denied")
	message.SetString(lang, "unauthorized.heading", "Access denied")
	message.SetString(lang, "unauthorized.message", "Your account does not have access to the admin panel.")
	message.SetString(lang, "unauthorized.back", "Back to home")

	// Flash notices
	message.SetString(lang, "flash.command_created", "Command created successfully.")
	message.SetString(lang, "flash.command_updated", "Command updated successfully.")
	message.SetString(lang, "flash.command_deleted", "Command deleted successfully.")

	// Errors
	message.SetString(lang, "error.fields_required", "Please fill in all required fields.")
	message.SetString(lang, "error.image_invalid_type", "The file must be an image.")
	message.SetString(lang, "error.image_too_large", "The file must be smaller than 5MB.")
	message.SetString(lang, "error.image_decode_failed", "The uploaded image could not be processed.")
	message.SetString(lang, "error.upload_failed", "Uploading the image failed. Please try again.")
	message.SetString(lang, "error.storage_failure", "Saving the command failed. Please try again.")
	message.SetString(lang, "error.not_found", "Command not found.")
	message.SetString(lang, "error.invalid_credentials", "Invalid email or password.")
	message.SetString(lang, "error.unknown", "An unexpected error occurred. Please try again.")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
}
