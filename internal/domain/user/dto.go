package user

// SetLevelRequest changes an account's tier
type SetLevelRequest struct {
	Level int `json:"level" validate:"gte=0,lte=100"`
}
