package request

import "eventease-admin/internal/usecase"

// BookingReportQuery binds the report query string. Defaults are the
// unfiltered view sorted by newest first.
type BookingReportQuery struct {
	Search  string `form:"search"`
	Status  string `form:"status"`
	Venue   string `form:"venue"`
	Days    int    `form:"days" binding:"omitempty,gte=0"`
	SortKey string `form:"sort"`
	SortDir string `form:"dir" binding:"omitempty,oneof=asc desc"`
	Page    int    `form:"page" binding:"omitempty,gte=1"`
	Size    int    `form:"pageSize" binding:"omitempty,gte=1,lte=100"`
}

func (q BookingReportQuery) ToQuery() usecase.BookingReportQuery {
	return usecase.BookingReportQuery{
		Search:  q.Search,
		Status:  q.Status,
		Venue:   q.Venue,
		Days:    q.Days,
		SortKey: q.SortKey,
		SortDir: q.SortDir,
		Page:    q.Page,
		Size:    q.Size,
	}
}
