package router

import (
	"context"
	"errors"
	"testing"

	apperrors "boxoffice/cli/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigateInvokesView(t *testing.T) {
	r := New(nil)
	var seen []string
	r.Handle("/login", func(_ context.Context, path string) error {
		seen = append(seen, path)
		return nil
	})

	require.NoError(t, r.Navigate(context.Background(), "/login"))

	assert.Equal(t, []string{"/login"}, seen)
	assert.Equal(t, "/login", r.Current())
	assert.Equal(t, []string{"/login"}, r.History())
}

func TestNavigateUnknownPath(t *testing.T) {
	r := New(nil)
	r.Handle("/movies", func(context.Context, string) error { return nil })
	require.NoError(t, r.Navigate(context.Background(), "/movies"))

	err := r.Navigate(context.Background(), "/nowhere")

	assert.True(t, apperrors.Is(err, apperrors.NavigationFailed))
	assert.Equal(t, "/movies", r.Current())
	assert.Equal(t, []string{"/movies"}, r.History())
}

func TestNavigateViewError(t *testing.T) {
	r := New(nil)
	boom := errors.New("terminal closed")
	r.Handle("/login", func(context.Context, string) error { return boom })

	err := r.Navigate(context.Background(), "/login")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, apperrors.NavigationFailed, apperrors.KindOf(err))
	assert.Equal(t, "/login", r.Current())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/login", "/login"},
		{"login", "/login"},
		{"/login/", "/login"},
		{" /admin/movies ", "/admin/movies"},
		{"", "/"},
		{"/", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize(tt.in), "normalize(%q)", tt.in)
	}
}

func TestHistoryIsACopy(t *testing.T) {
	r := New(nil)
	r.Handle("/", func(context.Context, string) error { return nil })
	require.NoError(t, r.Navigate(context.Background(), "/"))

	h := r.History()
	h[0] = "/tampered"
	assert.Equal(t, []string{"/"}, r.History())
}
