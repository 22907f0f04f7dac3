package service

import (
	"context"
	"sort"
	"sync"

	"github.com/jfarje/usell-backend/internal/model"
	"github.com/jfarje/usell-backend/internal/repository"
	"gorm.io/gorm"
)

type fakeCareerRepo struct {
	careers map[string]*model.Career
}

func newFakeCareerRepo(names ...string) *fakeCareerRepo {
	f := &fakeCareerRepo{careers: map[string]*model.Career{}}
	for i, name := range names {
		f.careers[name] = &model.Career{ID: uint64(i + 1), CareerName: name}
	}
	return f
}

func (f *fakeCareerRepo) FindByName(_ context.Context, name string) (*model.Career, error) {
	if c, ok := f.careers[name]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCareerRepo) ListAll(_ context.Context) ([]model.Career, error) {
	out := make([]model.Career, 0, len(f.careers))
	for _, c := range f.careers {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCareerRepo) FirstOrCreate(_ context.Context, name string) error {
	if _, ok := f.careers[name]; !ok {
		f.careers[name] = &model.Career{ID: uint64(len(f.careers) + 1), CareerName: name}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*model.Category
}

func newFakeCategoryRepo(names ...string) *fakeCategoryRepo {
	f := &fakeCategoryRepo{categories: map[string]*model.Category{}}
	for i, name := range names {
		f.categories[name] = &model.Category{ID: uint64(i + 1), Name: name}
	}
	return f
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uint64) (*model.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	if c, ok := f.categories[name]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) ListAll(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryRepo) FirstOrCreate(_ context.Context, category *model.Category) error {
	if existing, ok := f.categories[category.Name]; ok {
		*category = *existing
		return nil
	}
	category.ID = uint64(len(f.categories) + 1)
	cp := *category
	f.categories[category.Name] = &cp
	return nil
}

type fakeStudentRepo struct {
	students map[uint64]*model.Student
}

func newFakeStudentRepo(students ...*model.Student) *fakeStudentRepo {
	f := &fakeStudentRepo{students: map[uint64]*model.Student{}}
	for _, s := range students {
		f.students[s.ID] = s
	}
	return f
}

func (f *fakeStudentRepo) Create(_ context.Context, student *model.Student) error {
	if _, ok := f.students[student.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	for _, s := range f.students {
		if s.Email == student.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentRepo) FindByID(_ context.Context, id uint64) (*model.Student, error) {
	if s, ok := f.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStudentRepo) ListAll(_ context.Context) ([]model.Student, error) {
	out := make([]model.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id uint64) error {
	delete(f.students, id)
	return nil
}

type fakePostRepo struct {
	mu     sync.Mutex
	posts  map[uint64]*model.Post
	nextID uint64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[uint64]*model.Post{}}
}

func (f *fakePostRepo) Create(_ context.Context, post *model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	post.ID = f.nextID
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) FindActiveByID(_ context.Context, id uint64) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.posts[id]; ok && p.Status == model.PostStatusActive {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePostRepo) ListAll(_ context.Context) ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePostRepo) ListActiveByStudent(_ context.Context, studentID uint64) ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Post
	for _, p := range f.posts {
		if p.StudentID == studentID && p.Status == model.PostStatusActive {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePostRepo) ListByCategory(_ context.Context, categoryID uint64) ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Post
	for _, p := range f.posts {
		if p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePostRepo) ListRecent(_ context.Context, excludeStudentID uint64, limit int) ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Post
	for _, p := range f.posts {
		if p.StudentID != excludeStudentID && p.Status == model.PostStatusActive {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePostRepo) MarkInProcessIfActive(_ context.Context, id uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok || p.Status != model.PostStatusActive {
		return 0, nil
	}
	p.Status = model.PostStatusInProcess
	return 1, nil
}

func (f *fakePostRepo) CountByStudent(_ context.Context, studentID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.posts {
		if p.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

type fakeTransactionRepo struct {
	mu      sync.Mutex
	posts   *fakePostRepo
	created []*model.Transaction
	nextID  uint64
}

func newFakeTransactionRepo(posts *fakePostRepo) *fakeTransactionRepo {
	return &fakeTransactionRepo{posts: posts}
}

// Mirrors the real repository: the flip and the insert succeed or fail
// together, and only one caller can flip a given post.
func (f *fakeTransactionRepo) CreateForActivePost(ctx context.Context, postID, studentID uint64) (*model.Transaction, error) {
	rows, err := f.posts.MarkInProcessIfActive(ctx, postID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, repository.ErrPostNotActive
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t := &model.Transaction{
		ID:              f.nextID,
		PostID:          postID,
		StudentID:       studentID,
		GeneralStatus:   model.TransactionStatusPending,
		SellerStatus:    model.TransactionStatusPending,
		PurchaserStatus: model.TransactionStatusPending,
	}
	f.created = append(f.created, t)
	return t, nil
}

func (f *fakeTransactionRepo) CountByStudent(_ context.Context, studentID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, t := range f.created {
		if t.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

type wishKey struct {
	studentID uint64
	postID    uint64
}

type fakeWishPostRepo struct {
	wishes map[wishKey]*model.WishPost
	nextID uint64
}

func newFakeWishPostRepo() *fakeWishPostRepo {
	return &fakeWishPostRepo{wishes: map[wishKey]*model.WishPost{}}
}

func (f *fakeWishPostRepo) Create(_ context.Context, wish *model.WishPost) error {
	key := wishKey{studentID: wish.StudentID, postID: wish.PostID}
	if _, ok := f.wishes[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	wish.ID = f.nextID
	f.wishes[key] = wish
	return nil
}

func (f *fakeWishPostRepo) FindByID(_ context.Context, id uint64) (*model.WishPost, error) {
	for _, w := range f.wishes {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWishPostRepo) ListByStudent(_ context.Context, studentID uint64) ([]model.WishPost, error) {
	var out []model.WishPost
	for _, w := range f.wishes {
		if w.StudentID == studentID {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeWishPostRepo) Delete(_ context.Context, id uint64) error {
	for key, w := range f.wishes {
		if w.ID == id {
			delete(f.wishes, key)
			return nil
		}
	}
	return nil
}

func (f *fakeWishPostRepo) CountByStudent(_ context.Context, studentID uint64) (int64, error) {
	var n int64
	for _, w := range f.wishes {
		if w.StudentID == studentID {
			n++
		}
	}
	return n, nil
}
