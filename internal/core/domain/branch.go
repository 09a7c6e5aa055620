package domain

// Branch is a company branch office.
type Branch struct {
	BranchID int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Area     string `json:"area"`
}
