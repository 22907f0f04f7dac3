package handler

import (
	"time"

	"github.com/jfarje/usell-backend/internal/model"
	"github.com/jinzhu/copier"
)

// Views are the only shapes handlers serialize. Each one carries a fixed
// field set: a student never embeds its posts or transactions, and a career
// nested inside a student or post never embeds anything back.

type CareerView struct {
	ID         uint64 `json:"id"`
	CareerName string `json:"career_name"`
}

type CategoryView struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type StudentView struct {
	ID              uint64     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Level           int        `json:"level"`
	PhoneNumber     string     `json:"phone_number"`
	ProfileImageURL *string    `json:"profile_image_url"`
	SellerRating    float64    `json:"seller_rating"`
	PurchaserRating float64    `json:"purchaser_rating"`
	Career          CareerView `json:"career"`
}

type PostView struct {
	ID          uint64       `json:"id"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image_url"`
	Status      string       `json:"status"`
	Level       int          `json:"level"`
	PublishDate string       `json:"publish_date"`
	Category    CategoryView `json:"category"`
	Student     StudentView  `json:"student"`
	Careers     []CareerView `json:"careers"`
}

type WishPostView struct {
	ID        uint64   `json:"id"`
	AddedDate string   `json:"added_date"`
	Post      PostView `json:"post"`
}

func toCareerView(c *model.Career) CareerView {
	var v CareerView
	_ = copier.Copy(&v, c)
	return v
}

func toCategoryView(c *model.Category) CategoryView {
	var v CategoryView
	_ = copier.Copy(&v, c)
	return v
}

func toStudentView(s *model.Student) StudentView {
	var v StudentView
	_ = copier.Copy(&v, s)
	if s.Career != nil {
		v.Career = toCareerView(s.Career)
	}
	return v
}

func toPostView(p *model.Post) PostView {
	v := PostView{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Status:      string(p.Status),
		Level:       p.Level,
		PublishDate: p.PublishDate.Format(time.RFC3339),
		Careers:     make([]CareerView, 0, len(p.Careers)),
	}
	if p.Category != nil {
		v.Category = toCategoryView(p.Category)
	}
	if p.Student != nil {
		v.Student = toStudentView(p.Student)
	}
	for i := range p.Careers {
		v.Careers = append(v.Careers, toCareerView(&p.Careers[i]))
	}
	return v
}

func toWishPostView(w *model.WishPost) WishPostView {
	v := WishPostView{
		ID:        w.ID,
		AddedDate: w.AddedDate.Format(time.RFC3339),
	}
	if w.Post != nil {
		v.Post = toPostView(w.Post)
	}
	return v
}

func toPostViews(posts []model.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, toPostView(&posts[i]))
	}
	return views
}
