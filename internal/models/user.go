package models

// UserRecord holds one user's stored credentials.
// JSON keys match the users document written by earlier deployments,
// so existing files keep loading.
type UserRecord struct {
	PasswordHash string `json:"password"`
	ProfilePic   string `json:"profile_pic"`
}
