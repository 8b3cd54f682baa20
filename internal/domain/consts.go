package domain

import "time"

// DateLayout is the tag format used in scrum thread titles
const DateLayout = "2006-01-02"

// DefaultWeekdayLabels are the Monday-first weekday abbreviations used in titles
var DefaultWeekdayLabels = []string{"월", "화", "수", "목", "금", "토", "일"}

// DefaultExcludedRoles are exempt from attendance tracking
var DefaultExcludedRoles = []string{"PM", "Designer"}

const (
	DefaultMarker         = "📢"
	DefaultTitleSuffix    = "데일리 스크럼"
	DefaultCallout        = "🚨 어제 스크럼을 작성하지 않은 분들:"
	DefaultTimezone       = "Asia/Seoul"
	DefaultSchedule       = "0 9 * * *"
	DefaultHistoryWindow  = 100
	DefaultRequestTimeout = 30 * time.Second
)

// Section is one block of the daily scrum template
type Section struct {
	Header   string   `mapstructure:"header"`
	Examples []string `mapstructure:"examples"`
}

// DefaultSections is the five-part daily scrum template
var DefaultSections = []Section{
	{
		Header: "1️⃣ 어제 한 일",
		Examples: []string{
			`(예: "jira 티켓 번호 : 로그인 API 리팩토링 완료")`,
			`(예: "jira 티켓 번호 : 결제 모듈 오류 수정 및 테스트 진행")`,
		},
	},
	{
		Header: "2️⃣ 오늘 할 일",
		Examples: []string{
			`(예: "jira 티켓 번호 : 상품 상세 페이지 API 성능 개선")`,
			`(예: "jira 티켓 번호 : 배치 스케줄러 버그 수정")`,
		},
	},
	{
		Header: "3️⃣ 현재 문제/도움 필요한 사항",
		Examples: []string{
			`(예: "jira 티켓 번호 : 카프카 메시지 처리 중 지연 발생, 원인 파악 중")`,
			`(예: "jira 티켓 번호 : FeignClient 타임아웃 조정 관련 의견 필요")`,
		},
	},
	{
		Header: "4️⃣ 작업 시간",
		Examples: []string{
			`(예: "작업 시간 : 15 ~ 23시")`,
		},
	},
	{
		Header: "5️⃣ 기타 공유 사항",
		Examples: []string{
			`(예: "오늘 오후 3시에 팀 미팅 예정")`,
		},
	},
}

// ISOWeekday returns the ISO 8601 weekday number (1=Monday ... 7=Sunday)
func ISOWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}
