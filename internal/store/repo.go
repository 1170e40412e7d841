package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/model"
)

// settingsDocID is the fixed id of the settings singleton document.
const settingsDocID = "app"

// NewID generates a client-side document id, mirroring the local and
// realtime variants where the writer picks the key.
func NewID() string {
	return uuid.NewString()
}

// Repository marshals typed entities onto the document store. It keeps
// no cache: collections are small and reloaded per request, and each
// load is an immutable snapshot.
type Repository struct {
	s Store
}

func NewRepository(s Store) *Repository {
	return &Repository{s: s}
}

func (r *Repository) Store() Store { return r.s }

func loadAll[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	records, err := s.LoadAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		var v T
		if err := json.Unmarshal(rec.Data, &v); err != nil {
			log.Warn().Err(err).Str("collection", collection).Str("id", rec.ID).Msg("skipping unreadable document")
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *Repository) put(ctx context.Context, collection, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", collection, id, err)
	}
	return r.s.Put(ctx, collection, id, data)
}

// Creators

func (r *Repository) Creators(ctx context.Context) ([]model.User, error) {
	return loadAll[model.User](ctx, r.s, Creators)
}

func (r *Repository) CreatorByID(ctx context.Context, id string) (*model.User, error) {
	rec, err := r.s.Get(ctx, Creators, id)
	if err != nil || rec == nil {
		return nil, err
	}
	var u model.User
	if err := json.Unmarshal(rec.Data, &u); err != nil {
		return nil, fmt.Errorf("decode creator %s: %w", id, err)
	}
	return &u, nil
}

func (r *Repository) CreatorByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.Creators(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *Repository) PutCreator(ctx context.Context, u model.User) error {
	return r.put(ctx, Creators, u.ID, u)
}

// EnsureDefaultAdmin seeds the built-in administrator account when the
// creators collection is empty, so a fresh deployment is reachable.
func (r *Repository) EnsureDefaultAdmin(ctx context.Context, hashedPassword string) error {
	users, err := r.Creators(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	admin := model.User{
		ID:             "admin-1",
		Name:           "System Administrator",
		Email:          "admin@gisqo.com",
		HashedPassword: hashedPassword,
		Role:           model.RoleAdmin,
		Active:         true,
	}
	log.Info().Str("email", admin.Email).Msg("seeding default admin account")
	return r.PutCreator(ctx, admin)
}

// Clients

func (r *Repository) Clients(ctx context.Context) ([]model.Client, error) {
	return loadAll[model.Client](ctx, r.s, Clients)
}

func (r *Repository) PutClient(ctx context.Context, c model.Client) error {
	return r.put(ctx, Clients, c.ID, c)
}

// Content entries

func (r *Repository) Entries(ctx context.Context) ([]model.ContentEntry, error) {
	return loadAll[model.ContentEntry](ctx, r.s, ContentEntries)
}

func (r *Repository) PutEntry(ctx context.Context, e model.ContentEntry) error {
	return r.put(ctx, ContentEntries, e.ID, e)
}

func (r *Repository) RemoveEntry(ctx context.Context, id string) error {
	return r.s.Remove(ctx, ContentEntries, id)
}

// Notices

func (r *Repository) Notices(ctx context.Context) ([]model.Notice, error) {
	return loadAll[model.Notice](ctx, r.s, Notices)
}

func (r *Repository) PutNotice(ctx context.Context, n model.Notice) error {
	return r.put(ctx, Notices, n.ID, n)
}

func (r *Repository) RemoveNotice(ctx context.Context, id string) error {
	return r.s.Remove(ctx, Notices, id)
}

// Holidays

func (r *Repository) Holidays(ctx context.Context) ([]model.Holiday, error) {
	return loadAll[model.Holiday](ctx, r.s, Holidays)
}

func (r *Repository) PutHoliday(ctx context.Context, h model.Holiday) error {
	return r.put(ctx, Holidays, h.ID, h)
}

func (r *Repository) RemoveHoliday(ctx context.Context, id string) error {
	return r.s.Remove(ctx, Holidays, id)
}

// Shootings

func (r *Repository) Shootings(ctx context.Context) ([]model.Shooting, error) {
	return loadAll[model.Shooting](ctx, r.s, Shootings)
}

func (r *Repository) PutShooting(ctx context.Context, s model.Shooting) error {
	return r.put(ctx, Shootings, s.ID, s)
}

func (r *Repository) RemoveShooting(ctx context.Context, id string) error {
	return r.s.Remove(ctx, Shootings, id)
}

// Settings

// Settings returns the singleton configuration, falling back to
// defaults when nothing has been saved yet.
func (r *Repository) Settings(ctx context.Context) (model.AppSettings, error) {
	rec, err := r.s.Get(ctx, Settings, settingsDocID)
	if err != nil {
		return model.AppSettings{}, err
	}
	if rec == nil {
		return model.DefaultSettings(), nil
	}
	s := model.DefaultSettings()
	if err := json.Unmarshal(rec.Data, &s); err != nil {
		log.Warn().Err(err).Msg("unreadable settings document, using defaults")
		return model.DefaultSettings(), nil
	}
	return s.Normalize(), nil
}

func (r *Repository) SaveSettings(ctx context.Context, s model.AppSettings) error {
	return r.put(ctx, Settings, settingsDocID, s)
}
