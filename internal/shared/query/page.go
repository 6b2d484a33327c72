// Package query holds pagination primitives shared by repositories and
// use cases.
package query

// PageMeta describes the position of a result page within its collection.
type PageMeta struct {
	TotalRecords int64
	TotalPages   int
	CurrentPage  int
}

// NewPageMeta computes page metadata for a collection of total records split
// into pages of pageSize.
func NewPageMeta(total int64, page, pageSize int) PageMeta {
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		pages = 1
	}
	return PageMeta{
		TotalRecords: total,
		TotalPages:   pages,
		CurrentPage:  page,
	}
}
