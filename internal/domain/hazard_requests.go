package domain

type CreateReportRequest struct {
	Kind        HazardKind `json:"kind" validate:"required,oneof=oil_spill debris pollution other"`
	Severity    int        `json:"severity" validate:"required,severity"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Lat         float64    `json:"lat" validate:"lat"`
	Lng         float64    `json:"lng" validate:"lng"`
	ImageURL    string     `json:"image_url" validate:"omitempty,url"`
	ReportedBy  string     `json:"reported_by" validate:"required,max=120"`
}

type UpdateReportStatusRequest struct {
	Status ReportStatus `json:"status" validate:"required,oneof=verified declined"`
}

type ListReportsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type ListReportsResponse struct {
	Reports []HazardReport `json:"reports"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Total   int64          `json:"total"`
}

type RegisterRecipientRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,e164phone"`
}

type UpdateLocationRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}
