package widget

import (
	"github.com/ssugameworks/pajelingo/models"
)

// PageButton 페이지 버튼 하나. Ellipsis 이면 숫자 없이 자리만 표시합니다
type PageButton struct {
	Page     int
	Active   bool
	Ellipsis bool
}

// Pagination 페이지 이동 컨트롤 구성
type Pagination struct {
	HasPrevious  bool
	HasNext      bool
	PreviousPage int
	NextPage     int
	Buttons      []PageButton
}

// PageCount 숫자 버튼 수 (말줄임표 제외)
func (pagination Pagination) PageCount() int {
	count := 0
	for _, button := range pagination.Buttons {
		if !button.Ellipsis {
			count++
		}
	}
	return count
}

// BuildPagination 랭킹 응답과 현재 페이지로 컨트롤을 구성합니다.
// 이전/다음 링크가 모두 없으면 false 를 반환합니다.
//
// 첫 페이지와 마지막 페이지, 현재 페이지는 항상 표시합니다. 두 번째 자리의
// 말줄임표는 현재 페이지가 3보다 클 때, 끝에서 두 번째 자리의 말줄임표는
// 현재 페이지가 마지막 페이지-2 보다 작을 때만 표시합니다.
func BuildPagination(page *models.RankingPage, current int) (Pagination, bool) {
	if !page.HasPrevious() && !page.HasNext() {
		return Pagination{}, false
	}

	last := page.TotalPages()
	current = clampPage(current, last)

	pagination := Pagination{
		HasPrevious:  page.HasPrevious(),
		HasNext:      page.HasNext(),
		PreviousPage: current - 1,
		NextPage:     current + 1,
	}

	for i := 1; i <= last; i++ {
		switch {
		case i == current:
			pagination.Buttons = append(pagination.Buttons, PageButton{Page: i, Active: true})
		case i == 1 || i == last:
			pagination.Buttons = append(pagination.Buttons, PageButton{Page: i})
		case i == 2 && current > 3:
			pagination.Buttons = append(pagination.Buttons, PageButton{Page: i, Ellipsis: true})
		case i == last-1 && current < last-2:
			pagination.Buttons = append(pagination.Buttons, PageButton{Page: i, Ellipsis: true})
		}
	}

	return pagination, true
}

// clampPage 페이지를 [1, last] 로 제한합니다. last 를 모르면 하한만 적용합니다
func clampPage(page, last int) int {
	if page < 1 {
		page = 1
	}
	if last > 0 && page > last {
		page = last
	}
	return page
}
