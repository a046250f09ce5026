package tabs

import (
	"net/http"
	"time"
)

// CookieStore читает состояние из cookies запроса и пишет Set-Cookie в ответ.
// Пустое значение удаляет cookie.
type CookieStore struct {
	r    *http.Request
	w    http.ResponseWriter
	path string
	set  map[string]string
}

func NewCookieStore(w http.ResponseWriter, r *http.Request, path string) *CookieStore {
	if path == "" {
		path = "/"
	}
	return &CookieStore{r: r, w: w, path: path, set: map[string]string{}}
}

func (s *CookieStore) Get(name string) (string, bool) {
	if v, ok := s.set[name]; ok {
		return v, v != ""
	}
	c, err := s.r.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

func (s *CookieStore) Set(name, value string) {
	s.set[name] = value
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     s.path,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
	}
	http.SetCookie(s.w, c)
}
