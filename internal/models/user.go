package models

// 회원 사용자 모델 (users 테이블과 매핑)
type User struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Password         string `json:"-"` // 해시된 비밀번호, 응답에 노출 금지
	Nickname         string `json:"nickname"`
	FansCount        int    `json:"fansCount"`
	ReceiveLikeCount int    `json:"receiveLikeCount"`
	FollowCount      int    `json:"followCount"`
}

// 클라이언트 응답용 사용자 뷰, password는 항상 빈 문자열로 내려감
type UserView struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Password         string `json:"password"`
	Nickname         string `json:"nickname"`
	FansCount        int    `json:"fansCount"`
	ReceiveLikeCount int    `json:"receiveLikeCount"`
	FollowCount      int    `json:"followCount"`
	Token            string `json:"token,omitempty"`
}

// User -> UserView 변환, 민감 필드 제거
func NewUserView(user User, token string) UserView {
	return UserView{
		ID:               user.ID,
		Username:         user.Username,
		Password:         "",
		Nickname:         user.Nickname,
		FansCount:        user.FansCount,
		ReceiveLikeCount: user.ReceiveLikeCount,
		FollowCount:      user.FollowCount,
		Token:            token,
	}
}
