package util

import (
	"cinex_api/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		req      model.SignupReq
		wantErrs []string
	}{
		{
			name: "valid",
			req:  model.SignupReq{Name: "Al", Email: "al@x.com", Password: "pass123"},
		},
		{
			name:     "missing everything",
			req:      model.SignupReq{},
			wantErrs: []string{"Name is required.", "Email is required.", "Password is required."},
		},
		{
			name:     "name too short",
			req:      model.SignupReq{Name: "A", Email: "al@x.com", Password: "pass123"},
			wantErrs: []string{"Name must be between 2 and 50 characters."},
		},
		{
			name:     "name too long",
			req:      model.SignupReq{Name: strings.Repeat("a", 51), Email: "al@x.com", Password: "pass123"},
			wantErrs: []string{"Name must be between 2 and 50 characters."},
		},
		{
			name: "name trimmed before length check",
			req:  model.SignupReq{Name: "  Al  ", Email: "al@x.com", Password: "pass123"},
		},
		{
			name:     "bad email shape",
			req:      model.SignupReq{Name: "Al", Email: "not-an-email", Password: "pass123"},
			wantErrs: []string{"Please provide a valid email address."},
		},
		{
			name:     "password too short",
			req:      model.SignupReq{Name: "Al", Email: "al@x.com", Password: "p1"},
			wantErrs: []string{"Password must be at least 6 characters."},
		},
		{
			name:     "password without digit",
			req:      model.SignupReq{Name: "Al", Email: "al@x.com", Password: "password"},
			wantErrs: []string{"Password must contain at least one number."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSignup(&tt.req)
			require.Equal(t, tt.wantErrs, errs)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	require.Empty(t, ValidateLogin(&model.LoginReq{Email: "al@x.com", Password: "x"}))
	require.Equal(t,
		[]string{"Email is required.", "Password is required."},
		ValidateLogin(&model.LoginReq{}))
	require.Equal(t,
		[]string{"Please provide a valid email address."},
		ValidateLogin(&model.LoginReq{Email: "nope", Password: "x"}))
}

func TestValidateWatchlistAdd(t *testing.T) {
	valid := model.AddWatchlistReq{MediaId: 27205, MediaType: model.MediaTypeMovie, Title: "Inception"}
	require.Empty(t, ValidateWatchlistAdd(&valid))

	require.Equal(t,
		[]string{"mediaId is required.", "mediaType is required.", "title is required."},
		ValidateWatchlistAdd(&model.AddWatchlistReq{}))

	bad := model.AddWatchlistReq{MediaId: 27205, MediaType: "book", Title: "Inception"}
	require.Equal(t,
		[]string{"mediaType must be \"movie\" or \"tv\"."},
		ValidateWatchlistAdd(&bad))
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "al@x.com", NormalizeEmail("  AL@X.CoM "))
}
