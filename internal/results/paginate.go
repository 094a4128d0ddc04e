// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import "github.com/pdiddy/paperscope/pkg/types"

// TotalPages returns ceil(count/pageSize). Zero items means zero pages; the
// display layer treats that as one page of zero items.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage forces page into [1, max(totalPages, 1)]. Out-of-range requests
// never produce an empty page when data exists.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices papers into the requested fixed-size page, clamping the
// page number first. The returned slice aliases papers; it is read-only by
// convention since result sets are replaced, never edited.
func Paginate(papers []types.Paper, page, pageSize int) ([]types.Paper, int) {
	totalPages := TotalPages(len(papers), pageSize)
	page = ClampPage(page, totalPages)

	if len(papers) == 0 || pageSize <= 0 {
		return nil, totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(papers) {
		end = len(papers)
	}
	return papers[start:end], totalPages
}
