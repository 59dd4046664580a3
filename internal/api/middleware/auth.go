package middleware

import (
	"net/http"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
)

// UserIDHeader заголовок с идентификатором сотрудника
const UserIDHeader = "X-User-ID"

const msgMissingUserID = "требуется заголовок X-User-ID"

// Auth требует наличия заголовка X-User-ID на защищенных маршрутах.
// Сессий и токенов нет: фронтенд передает id вошедшего сотрудника.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(UserIDHeader) == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID возвращает идентификатор сотрудника из заголовка запроса
func UserID(r *http.Request) string {
	return r.Header.Get(UserIDHeader)
}
