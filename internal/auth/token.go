/* 세션 토큰 발급 및 비밀번호 해싱 유틸리티 함수들 */

package auth

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// 불투명(opaque) 세션 토큰 생성, 대문자 UUID 형식
// 토큰 자체에는 아무 구조적 의미가 없음 (bearer 전용)
func GenerateToken() string {
	return strings.ToUpper(uuid.New().String())
}

// 비밀번호 해싱 (MD5, salt 없음)
// 로그인 시 (username, digest) 완전 일치 조회를 사용하므로 결정적 해시가 필요함
func HashPassword(plain string) string {
	digest := md5.Sum([]byte(plain))
	return hex.EncodeToString(digest[:])
}
