// Package flash одноразовые уведомления, переживающие один редирект.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const cookieName = "flash"

// Kind категория уведомления.
type Kind string

const (
	Info  Kind = "info"
	Error Kind = "error"
)

type Message struct {
	Kind Kind   `json:"k"`
	Text string `json:"t"`
}

// Set добавляет уведомление к уже накопленным в этом запросе и кладёт их в cookie.
func Set(w http.ResponseWriter, r *http.Request, kind Kind, text string) {
	msgs := read(r)
	msgs = append(msgs, Message{Kind: kind, Text: text})
	raw, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	value := base64.RawURLEncoding.EncodeToString(raw)
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// видно и в текущем запросе, если Set вызовут повторно до редиректа
	r.AddCookie(&http.Cookie{Name: cookieName, Value: value})
}

// Pop возвращает накопленные уведомления и стирает cookie.
func Pop(w http.ResponseWriter, r *http.Request) []Message {
	msgs := read(r)
	if len(msgs) == 0 {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return msgs
}

func read(r *http.Request) []Message {
	var msgs []Message
	// берём последнюю cookie: Set мог добавить свежую поверх пришедшей
	cookies := r.CookiesNamed(cookieName)
	if len(cookies) == 0 {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookies[len(cookies)-1].Value)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}
	return msgs
}
