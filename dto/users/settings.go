package users

import "strings"

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r *UpdateProfileRequest) Validate() map[string]string {
	errors := make(map[string]string)
	name := strings.TrimSpace(r.Name)
	if name == "" {
		errors["name"] = "name is required"
	} else if len(name) > 100 {
		errors["name"] = "name must be at most 100 characters"
	}
	return errors
}

func (r *ChangePasswordRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.OldPassword) == "" {
		errors["oldPassword"] = "current password is required"
	}
	if len(r.NewPassword) < 8 {
		errors["newPassword"] = "new password must be at least 8 characters"
	}
	if r.NewPassword != r.ConfirmPassword {
		errors["confirmPassword"] = "password confirmation does not match"
	}
	return errors
}
