package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/repository"
)

type memoryImageStore struct {
	files   map[string]string
	removed []string
}

func (m *memoryImageStore) Save(name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if m.files == nil {
		m.files = map[string]string{}
	}
	ref := "/uploads/" + name
	m.files[ref] = string(data)
	return ref, nil
}

func (m *memoryImageStore) Remove(ref string) error {
	m.removed = append(m.removed, ref)
	delete(m.files, ref)
	return nil
}

func newMenuEnv(t *testing.T) (*repository.Repositories, *menuService, string) {
	t.Helper()
	repos := newTestRepos(t)
	category := seedCategory(t, repos, "Mains")
	svc := NewMenuService(repos.Menu, repos.Categories, &memoryImageStore{}, nil, 5<<20).(*menuService)
	return repos, svc, category.SlugID
}

func TestMenuService_Create(t *testing.T) {
	ctx := context.Background()
	_, svc, categoryID := newMenuEnv(t)

	item, err := svc.Create(ctx, MenuItemInput{Name: "Lasagna", Description: "Layered pasta bake", Price: d("11.50"), CategoryID: categoryID})
	require.NoError(t, err)
	assert.NotEmpty(t, item.SlugID)

	_, err = svc.Create(ctx, MenuItemInput{Name: "lasagna", Price: d("1"), CategoryID: categoryID})
	assert.Equal(t, apperrors.ErrMenuNameExists, err)

	_, err = svc.Create(ctx, MenuItemInput{Name: "Soup", Price: d("1"), CategoryID: "missing"})
	assert.Equal(t, apperrors.ErrCategoryNotFound, err)

	got, err := svc.GetBySlugID(ctx, item.SlugID)
	require.NoError(t, err)
	assert.True(t, d("11.50").Equal(got.Price))

	joined, err := svc.ListWithCategory(ctx)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	require.NotNil(t, joined[0].Category)
	assert.Equal(t, "Mains", joined[0].Category.Name)

	byCategory, err := svc.ListByCategory(ctx, categoryID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
}

func TestMenuService_Update(t *testing.T) {
	ctx := context.Background()
	repos, svc, categoryID := newMenuEnv(t)
	a := seedMenuItem(t, repos, categoryID, "Burger", "9.00")
	seedMenuItem(t, repos, categoryID, "Fries", "3.00")

	taken := "Fries"
	_, err := svc.Update(ctx, MenuUpdateInput{SlugID: a.SlugID, Name: &taken})
	assert.Equal(t, apperrors.ErrMenuNameExists, err)

	price := d("9.75")
	updated, err := svc.Update(ctx, MenuUpdateInput{SlugID: a.SlugID, Price: &price})
	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price))

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.Get(ctx, a.ID)
	assert.Equal(t, apperrors.ErrMenuItemNotFound, err)
}

func TestMenuService_Page(t *testing.T) {
	ctx := context.Background()
	repos, svc, categoryID := newMenuEnv(t)
	for _, name := range []string{"Chicken Curry", "Beef Stew", "Chicken Wings", "100% Juice", "Apple Pie"} {
		seedMenuItem(t, repos, categoryID, name, "5.00")
	}

	tests := []struct {
		name      string
		params    PageParams
		wantNames []string
		wantPage  Pagination
	}{
		{
			name:      "all rows",
			params:    PageParams{},
			wantNames: []string{"Chicken Curry", "Beef Stew", "Chicken Wings", "100% Juice", "Apple Pie"},
			wantPage:  Pagination{TotalDocuments: 5, TotalPages: 1, CurrentPage: 1, PageSize: 5},
		},
		{
			name:      "search is case-insensitive",
			params:    PageParams{Search: "CHICKEN"},
			wantNames: []string{"Chicken Curry", "Chicken Wings"},
			wantPage:  Pagination{TotalDocuments: 2, TotalPages: 1, CurrentPage: 1, PageSize: 2},
		},
		{
			name:      "wildcards are literal",
			params:    PageParams{Search: "%"},
			wantNames: []string{"100% Juice"},
			wantPage:  Pagination{TotalDocuments: 1, TotalPages: 1, CurrentPage: 1, PageSize: 1},
		},
		{
			name:      "second page sorted by name",
			params:    PageParams{Page: 2, Limit: 2, Sort: "asc"},
			wantNames: []string{"Beef Stew", "Chicken Curry"},
			wantPage:  Pagination{TotalDocuments: 5, TotalPages: 3, CurrentPage: 2, PageSize: 2, RemainingPages: 1},
		},
		{
			name:      "descending",
			params:    PageParams{Limit: 1, Sort: "desc"},
			wantNames: []string{"Chicken Wings"},
			wantPage:  Pagination{TotalDocuments: 5, TotalPages: 5, CurrentPage: 1, PageSize: 1, RemainingPages: 4},
		},
		{
			name:      "no matches",
			params:    PageParams{Search: "sushi"},
			wantNames: []string{},
			wantPage:  Pagination{CurrentPage: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.Page(ctx, tt.params)
			require.NoError(t, err)
			names := make([]string, 0, len(page.Items))
			for _, item := range page.Items {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.wantPage, page.Pagination)
		})
	}

	_, err := svc.Page(ctx, PageParams{Sort: "sideways"})
	assert.Equal(t, apperrors.ErrBadRequest, err)
}

func TestMenuService_UploadImage(t *testing.T) {
	ctx := context.Background()
	repos, svc, categoryID := newMenuEnv(t)
	item := seedMenuItem(t, repos, categoryID, "Pizza", "10.00")
	store := svc.images.(*memoryImageStore)

	_, err := svc.UploadImage(ctx, item.SlugID, "pizza.gif", 10, strings.NewReader("gif"))
	assert.Equal(t, apperrors.ErrInvalidImage, err)

	_, err = svc.UploadImage(ctx, item.SlugID, "pizza.png", 6<<20, strings.NewReader("big"))
	assert.Equal(t, apperrors.ErrImageTooLarge, err)

	first, err := svc.UploadImage(ctx, item.SlugID, "pizza.PNG", 3, strings.NewReader("one"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Image, "/uploads/menu_"+item.SlugID+"_"))
	assert.True(t, strings.HasSuffix(first.Image, ".png"))
	firstRef := first.Image

	svc.now = func() time.Time { return time.Unix(4102444800, 0) }
	second, err := svc.UploadImage(ctx, item.SlugID, "pizza.jpg", 3, strings.NewReader("two"))
	require.NoError(t, err)
	assert.NotEqual(t, firstRef, second.Image)
	assert.Contains(t, store.removed, firstRef)
	assert.Equal(t, "two", store.files[second.Image])
}

func TestMenuService_Import(t *testing.T) {
	ctx := context.Background()
	repos, svc, _ := newMenuEnv(t)
	seedMenuItem(t, repos, seedCategory(t, repos, "Drinks").SlugID, "Cola", "2.00")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"name", "description", "price", "category"},
		{"Tiramisu", "Coffee dessert", "6.50", "Mains"},
		{"Espresso", "Short coffee", "2.5", "drinks"},
		{"Cola", "Duplicate of existing", "2.00", "Drinks"},
		{"Mystery", "Unknown category", "4.00", "Secret"},
		{"Cheap", "Negative price", "-1", "Mains"},
		{"Precise", "Too many decimals", "1.005", "Mains"},
		{"Tiramisu", "Duplicate in sheet", "6.50", "Mains"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	result, err := svc.Import(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, []int{4, 5, 6, 7, 8}, result.Skipped)

	imported, err := repos.Menu.FindByName(ctx, "espresso")
	require.NoError(t, err)
	assert.True(t, d("2.5").Equal(imported.Price))

	_, err = svc.Import(ctx, strings.NewReader("not a workbook"))
	assert.Equal(t, apperrors.ErrInvalidWorkbook, err)
}
