package handler

import (
	"errors"
	"fmt"

	"dictko/internal/domain"
	"dictko/internal/service"
	"dictko/internal/word"
)

// User-facing messages, Korean first with the English rendering in parentheses
const (
	msgEmptyWord       = "단어를 입력해주세요. (Please enter a word.)"
	msgInvalidWord     = "올바른 영어 단어를 입력해주세요. (Please enter a valid English word.)"
	msgUnknownSpeed    = "지원하지 않는 재생 속도입니다. (Unsupported playback speed.)"
	msgUnavailable     = "사전 API에 연결할 수 없습니다. (Cannot connect to dictionary API.)"
	msgLookupFailed    = "단어 검색 중 오류가 발생했습니다. (An error occurred while searching for the word.)"
	msgPronounceFailed = "발음 생성 중 오류가 발생했습니다. (An error occurred while generating pronunciation.)"
	msgFavoriteFailed  = "즐겨찾기 추가 중 오류가 발생했습니다. (Error adding to favorites.)"
	msgFavoritesFailed = "즐겨찾기를 불러오는 중 오류가 발생했습니다. (Error loading favorites.)"
	msgFavoriteMissing = "즐겨찾기 항목을 찾을 수 없습니다. (Favorite item not found.)"
	msgRemoveFailed    = "즐겨찾기 제거 중 오류가 발생했습니다. (Error removing favorite.)"
	msgStorageDisabled = "즐겨찾기 기능을 사용할 수 없습니다. (Favorites are not available.)"
	msgPageNotFound    = "페이지를 찾을 수 없습니다. (Page not found.)"
	msgServerError     = "서버 오류가 발생했습니다. (Server error occurred.)"
)

func msgNotFound(w string) string {
	return fmt.Sprintf("'%s'의 의미를 찾을 수 없습니다. (Definition for '%s' not found.)", w, w)
}

func msgFavoriteAdded(w string) string {
	return fmt.Sprintf("'%s'을(를) 즐겨찾기에 추가했습니다. (Added '%s' to favorites.)", w, w)
}

func msgFavoriteExists(w string) string {
	return fmt.Sprintf("'%s'은(는) 이미 즐겨찾기에 있습니다. ('%s' is already in favorites.)", w, w)
}

func msgFavoriteRemoved(w string) string {
	return fmt.Sprintf("'%s'을(를) 즐겨찾기에서 제거했습니다. (Removed '%s' from favorites.)", w, w)
}

// validationMessage picks the message for a domain.ErrValidation failure
func validationMessage(err error) string {
	switch {
	case errors.Is(err, word.ErrEmpty):
		return msgEmptyWord
	case errors.Is(err, service.ErrUnknownSpeed):
		return msgUnknownSpeed
	default:
		return msgInvalidWord
	}
}

// lookupMessage maps a lookup pipeline failure for w to its message
func lookupMessage(err error, w string) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return validationMessage(err)
	case errors.Is(err, domain.ErrNotFound):
		return msgNotFound(w)
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return msgUnavailable
	default:
		return msgLookupFailed
	}
}
