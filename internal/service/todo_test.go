package service

import (
	"context"
	"errors"
	"testing"

	"todo_api/internal/models"
)

// fakeTodoRepo is a minimal stub that satisfies repository.TodoRepo.
type fakeTodoRepo struct {
	items []models.TodoItem
	n     int64
	err   error

	gotItem string
	gotID   int64
	calls   int
}

func (f *fakeTodoRepo) List(ctx context.Context) ([]models.TodoItem, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeTodoRepo) Insert(ctx context.Context, item string) (int64, error) {
	f.calls++
	f.gotItem = item
	return f.n, f.err
}

func (f *fakeTodoRepo) Delete(ctx context.Context, id int64) (int64, error) {
	f.calls++
	f.gotID = id
	return f.n, f.err
}

func TestTodoService_List(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		repo    *fakeTodoRepo
		wantLen int
		wantErr bool
	}{
		{name: "items passed through", repo: &fakeTodoRepo{items: []models.TodoItem{{ID: 1, Item: "a"}, {ID: 2, Item: "b"}}}, wantLen: 2},
		{name: "nil becomes empty", repo: &fakeTodoRepo{}, wantLen: 0},
		{name: "error propagates", repo: &fakeTodoRepo{err: errors.New("db down")}, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewTodoService(tc.repo)
			got, err := svc.List(context.Background())
			if tc.wantErr {
				if !errors.Is(err, tc.repo.err) {
					t.Fatalf("expected repo error; got %v", err)
				}
				if got != nil {
					t.Fatalf("expected nil items on error; got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || len(got) != tc.wantLen {
				t.Fatalf("got %#v; want %d non-nil items", got, tc.wantLen)
			}
		})
	}
}

func TestTodoService_Create_PassesTextUnchanged(t *testing.T) {
	t.Parallel()

	repo := &fakeTodoRepo{n: 1}
	svc := NewTodoService(repo)

	n, err := svc.Create(context.Background(), "  padded  ")
	if err != nil || n != 1 {
		t.Fatalf("Create = (%d, %v)", n, err)
	}
	if repo.gotItem != "  padded  " {
		t.Fatalf("item altered: %q", repo.gotItem)
	}
}

func TestTodoService_Delete(t *testing.T) {
	t.Parallel()

	repo := &fakeTodoRepo{n: 0}
	svc := NewTodoService(repo)

	n, err := svc.Delete(context.Background(), 999)
	if err != nil || n != 0 {
		t.Fatalf("Delete = (%d, %v)", n, err)
	}
	if repo.gotID != 999 || repo.calls != 1 {
		t.Fatalf("repo got id=%d calls=%d", repo.gotID, repo.calls)
	}

	repo.err = errors.New("locked")
	if _, err := svc.Delete(context.Background(), 1); !errors.Is(err, repo.err) {
		t.Fatalf("expected repo error; got %v", err)
	}
}
