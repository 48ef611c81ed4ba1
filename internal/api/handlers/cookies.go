package handlers

import (
	"net/http"
	"time"
)

// Имена cookie сессий
const (
	OwnerSessionCookie = "owner_session"
	OwnerIDCookie      = "owner_id"
	UserSessionCookie  = "user_session"
	UserIDCookie       = "user_id"
)

// SetSessionCookies ставит cookie с токеном сессии (HttpOnly) и cookie с id субъекта
func SetSessionCookies(w http.ResponseWriter, sessionName, token, idName, id string, expiresAt time.Time, secure bool) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}

	for _, c := range []*http.Cookie{
		{Name: sessionName, Value: token},
		{Name: idName, Value: id},
	} {
		c.Path = "/"
		c.HttpOnly = true
		c.Secure = secure
		c.SameSite = http.SameSiteLaxMode
		c.MaxAge = maxAge
		c.Expires = expiresAt
		http.SetCookie(w, c)
	}
}

// ClearCookies удаляет cookie
func ClearCookies(w http.ResponseWriter, secure bool, names ...string) {
	for _, name := range names {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
		})
	}
}

// CookieValue значение cookie или пустая строка
func CookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
