package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/augie-sif/sif-backend/models"
)

// fakeStorage records bucket traffic so tests can assert on exactly which
// assets were uploaded and deleted.
type fakeStorage struct {
	endpoint  string
	uploads   []string
	deletes   []string
	deleteErr error
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{endpoint: "https://cdn.test"}
}

func (f *fakeStorage) Upload(_ context.Context, bucket, key string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, bucket+"/"+key)
	return f.endpoint + "/" + bucket + "/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, bucket, key string) error {
	f.deletes = append(f.deletes, bucket+"/"+key)
	return f.deleteErr
}

func (f *fakeStorage) ParseURL(raw string) (string, string, bool) {
	if !strings.HasPrefix(raw, f.endpoint+"/") {
		return "", "", false
	}
	rest := strings.TrimPrefix(raw, f.endpoint+"/")
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// fakeHomeSectionStore is an in-memory homeSectionStore.
type fakeHomeSectionStore struct {
	sections  map[string]models.HomeSection
	updateErr error
}

func newFakeHomeSectionStore(sections ...models.HomeSection) *fakeHomeSectionStore {
	store := &fakeHomeSectionStore{sections: make(map[string]models.HomeSection)}
	for _, s := range sections {
		store.sections[s.ID] = s
	}
	return store
}

func (f *fakeHomeSectionStore) FindAll() ([]models.HomeSection, error) {
	all := make([]models.HomeSection, 0, len(f.sections))
	for _, s := range f.sections {
		all = append(all, s)
	}
	return all, nil
}

func (f *fakeHomeSectionStore) FindByID(id string) (*models.HomeSection, error) {
	s, ok := f.sections[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeHomeSectionStore) Create(section *models.HomeSection) (*models.HomeSection, error) {
	if section.ID == "" {
		section.ID = "generated-id"
	}
	f.sections[section.ID] = *section
	return section, nil
}

func (f *fakeHomeSectionStore) UpdateFields(id string, fields map[string]any) (bool, error) {
	if f.updateErr != nil {
		return false, f.updateErr
	}
	s, ok := f.sections[id]
	if !ok {
		return false, nil
	}
	if v, ok := fields["title"]; ok {
		s.Title = v.(string)
	}
	if v, ok := fields["content"]; ok {
		s.Content = v.(string)
	}
	if v, ok := fields["image_url"]; ok {
		s.ImageURL = v.(string)
	}
	if v, ok := fields["order_index"]; ok {
		s.OrderIndex = v.(int)
	}
	f.sections[id] = s
	return true, nil
}

func (f *fakeHomeSectionStore) Delete(id string) (bool, error) {
	if _, ok := f.sections[id]; !ok {
		return false, nil
	}
	delete(f.sections, id)
	return true, nil
}

// fakeUserStore is an in-memory userStore.
type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	store := &fakeUserStore{users: make(map[string]models.User)}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return store
}

func (f *fakeUserStore) FindAll() ([]models.User, error) {
	all := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, u)
	}
	return all, nil
}

func (f *fakeUserStore) FindByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByGoogleID(googleID string) (*models.User, error) {
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = "generated-user"
	}
	f.users[user.ID] = *user
	return user, nil
}

func (f *fakeUserStore) UpdateFields(id string, fields map[string]any) (bool, error) {
	u, ok := f.users[id]
	if !ok {
		return false, nil
	}
	if v, ok := fields["role"]; ok {
		u.Role = models.Role(v.(string))
	}
	if v, ok := fields["is_active"]; ok {
		u.IsActive = v.(bool)
	}
	if v, ok := fields["password"]; ok {
		u.Password = v.(string)
	}
	if v, ok := fields["profile_picture"]; ok {
		url := v.(string)
		u.ProfilePicture = &url
	}
	f.users[id] = u
	return true, nil
}

func (f *fakeUserStore) Delete(id string) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

// fakeNoteStore is an in-memory noteStore.
type fakeNoteStore struct {
	notes map[string]models.Note
}

func newFakeNoteStore(notes ...models.Note) *fakeNoteStore {
	store := &fakeNoteStore{notes: make(map[string]models.Note)}
	for _, n := range notes {
		store.notes[n.ID] = n
	}
	return store
}

func (f *fakeNoteStore) FindAll() ([]models.Note, error) {
	all := make([]models.Note, 0, len(f.notes))
	for _, n := range f.notes {
		all = append(all, n)
	}
	return all, nil
}

func (f *fakeNoteStore) FindByID(id string) (*models.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (f *fakeNoteStore) Create(note *models.Note) (*models.Note, error) {
	if note.ID == "" {
		note.ID = "generated-note"
	}
	f.notes[note.ID] = *note
	return note, nil
}

func (f *fakeNoteStore) UpdateFields(id string, fields map[string]any) (bool, error) {
	n, ok := f.notes[id]
	if !ok {
		return false, nil
	}
	if v, ok := fields["title"]; ok {
		n.Title = v.(string)
	}
	if v, ok := fields["content"]; ok {
		n.Content = v.(string)
	}
	if v, ok := fields["meeting_date"]; ok {
		n.MeetingDate = v.(time.Time)
	}
	f.notes[id] = n
	return true, nil
}

func (f *fakeNoteStore) Delete(id string) (bool, error) {
	if _, ok := f.notes[id]; !ok {
		return false, nil
	}
	delete(f.notes, id)
	return true, nil
}
