package models

import (
	"fmt"
	"strings"
)

const (
	SortByID    = "id"
	SortByTitle = "title"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SortParams ใช้เก็บค่าการเรียงลำดับของรายการ questionnaires
type SortParams struct {
	SortBy string `json:"sortBy" query:"sortBy" example:"id"` // ฟิลด์ที่ใช้เรียงลำดับ (id/title)
	Order  string `json:"order" query:"order" example:"asc"`  // ทิศทางการเรียง (asc/desc)
}

// DefaultSort ค่าตั้งต้น: เรียงตาม id จากน้อยไปมาก
func DefaultSort() SortParams {
	return SortParams{
		SortBy: SortByID,
		Order:  OrderAsc,
	}
}

// Normalize fills empty fields with defaults and rejects unknown values.
func (p SortParams) Normalize() (SortParams, error) {
	out := DefaultSort()
	if p.SortBy != "" {
		out.SortBy = strings.ToLower(p.SortBy)
	}
	if p.Order != "" {
		out.Order = strings.ToLower(p.Order)
	}
	if out.SortBy != SortByID && out.SortBy != SortByTitle {
		return out, fmt.Errorf("unsupported sortBy %q", p.SortBy)
	}
	if out.Order != OrderAsc && out.Order != OrderDesc {
		return out, fmt.Errorf("unsupported order %q", p.Order)
	}
	return out, nil
}

// IsDesc reports whether the order is descending.
func (p SortParams) IsDesc() bool {
	return p.Order == OrderDesc
}

// GetSortOrder สร้างค่าทิศทางสำหรับ MongoDB (1 = asc, -1 = desc)
func (p SortParams) GetSortOrder() int {
	if p.IsDesc() {
		return -1
	}
	return 1
}
