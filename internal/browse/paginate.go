package browse

// DefaultPageSize 페이지 크기가 지정되지 않았을 때 사용하는 기본값
const DefaultPageSize = 12

// DefaultWindowRadius 페이지 이동 UI에서 현재 페이지 좌우로 표시할 페이지 수
const DefaultWindowRadius = 2

// Page 목록의 한 페이지와 페이지 정보를 담습니다.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Number     int  `json:"page"`
	Size       int  `json:"page_size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`

	// Start, End 현재 페이지 항목의 1부터 시작하는 범위 ("13-24 of 30"). 목록이 비어 있으면 0입니다.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Paginate list를 size 크기로 나눈 number번째 페이지를 반환합니다.
//
// 전체 페이지 수는 빈 목록이라도 최소 1이며, 범위를 벗어난 페이지 번호는 [1, TotalPages]로 보정됩니다.
// size가 1보다 작으면 DefaultPageSize를 사용합니다.
func Paginate[T any](list []T, size, number int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}

	totalPages := (len(list) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	number = ClampPage(number, totalPages)

	start := (number - 1) * size
	end := min(start+size, len(list))

	p := Page[T]{
		Items:      make([]T, 0, end-start),
		Number:     number,
		Size:       size,
		TotalItems: len(list),
		TotalPages: totalPages,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
	}
	p.Items = append(p.Items, list[start:end]...)

	if end > start {
		p.Start, p.End = start+1, end
	}

	return p
}

// ClampPage 페이지 번호를 [1, totalPages] 범위로 보정합니다.
func ClampPage(number, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if number < 1 {
		return 1
	}
	if number > totalPages {
		return totalPages
	}
	return number
}

// PageWindow 현재 페이지 좌우 radius 범위의 페이지 번호 목록을 반환합니다.
// 예: PageWindow(5, 10, 2) -> [3 4 5 6 7]
func PageWindow(current, totalPages, radius int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	current = ClampPage(current, totalPages)

	from := max(1, current-radius)
	to := min(totalPages, current+radius)

	window := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		window = append(window, i)
	}
	return window
}
