package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"restaurant/internal/model"
	"restaurant/internal/repository"
	"restaurant/internal/testutil"
)

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	return repository.New(testutil.NewDB(t))
}

func seedUser(t *testing.T, repos *repository.Repositories, email string) *model.User {
	t.Helper()
	user := &model.User{Name: "Test User", Email: email, Phone: "9876543210", PasswordHash: "x", Role: model.RoleUser}
	require.NoError(t, repos.Users.Create(context.Background(), user))
	return user
}

func seedCategory(t *testing.T, repos *repository.Repositories, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name, Description: "Category " + name}
	require.NoError(t, repos.Categories.Create(context.Background(), category))
	return category
}

func seedMenuItem(t *testing.T, repos *repository.Repositories, categoryID, name, price string) *model.MenuItem {
	t.Helper()
	item := &model.MenuItem{Name: name, Description: "Tasty " + name, Price: d(price), CategoryID: categoryID}
	require.NoError(t, repos.Menu.Create(context.Background(), item))
	return item
}

func seedCartEntry(t *testing.T, repos *repository.Repositories, userID string, item *model.MenuItem, qty int) {
	t.Helper()
	entry := &model.CartEntry{
		UserID:     userID,
		MenuItemID: item.SlugID,
		Quantity:   qty,
		Menu:       datatypes.NewJSONType(item.Summary()),
	}
	require.NoError(t, repos.Carts.Create(context.Background(), entry))
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (n *recordingNotifier) Send(ctx context.Context, to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMail{To: to, Subject: subject, Body: body})
	return n.err
}

func (n *recordingNotifier) last() sentMail {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return sentMail{}
	}
	return n.sent[len(n.sent)-1]
}
