// Package view модели страниц и их отрисовка. Обработчики собирают модель,
// Renderer превращает её в HTML.
package view

import (
	"IcePlant/internal/flash"
	"IcePlant/internal/model"
	"io"
)

// Имена страниц.
const (
	PageHome      = "index"
	PageSearch    = "search"
	PageAuth      = "auth"
	PageListings  = "icecans"
	PageListing   = "icecan"
	PageOwners    = "owners"
	PageProfile   = "profile"
	PageWebsites  = "websites"
	PageMaterials = "materials"
	PageMessages  = "messages"
	PageSettings  = "settings"
)

// Renderer отрисовывает страницу name с моделью data.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Page общая часть всех страниц.
type Page struct {
	Title     string
	Viewer    *model.User
	Flashes   []flash.Message
	DarkTheme bool
}

func (p Page) LoggedIn() bool { return p.Viewer != nil }

type HomePage struct {
	Page
	Listings []model.Listing
	Posts    []model.Post
}

type SearchPage struct {
	Page
	Query    string
	Owners   []model.User
	Listings []model.Listing
	Posts    []model.Post
}

type AuthPage struct {
	Page
}

type ListingsPage struct {
	Page
	Listings []model.Listing
}

type ListingPage struct {
	Page
	Listing      *model.Listing
	Interested   []model.User
	IsInterested bool
	// OwnerContact пусто, если владелец скрыл контакт.
	OwnerContact string
}

type OwnersPage struct {
	Page
	Owners []model.User
}

type ProfilePage struct {
	Page
	User        *model.User
	Contact     string
	Listings    []model.Listing
	Websites    []model.Website
	Materials   []model.Material
	Posts       []model.Post
	Followers   int64
	Following   int64
	IsOwner     bool
	IsFollowing bool
}

type WebsitesPage struct {
	Page
	Websites []model.Website
}

type MaterialsPage struct {
	Page
	Materials []model.Material
}

type MessagesPage struct {
	Page
	Conversations []model.User
	With          *model.User
	Thread        []model.Message
}

type SettingsPage struct {
	Page
	Settings model.Settings
}
