package reward

// UpdateConfigRequest upserts a level's disclosure percentage
type UpdateConfigRequest struct {
	Level      int     `json:"level" validate:"gte=0,lte=100"`
	Percentage float64 `json:"percentage" validate:"required,gt=0,lte=1"`
}
